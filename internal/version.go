package internal

// Version is the current owsmerge release version
const Version = "0.1.0"
