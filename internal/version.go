package internal

// Version is the current release version
const Version = "2.1.0"
