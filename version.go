package main

// _version is the version of hilite.
// It is overridden at release time with the -X linker flag.
var _version = "dev"
