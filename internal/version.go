package internal

// Version is the current redub release version.
const Version = "0.1.0"
