package internal

// Version is the gtai release version.
const Version = "0.3.0"
