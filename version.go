package pavlov

// Version is the library version reported by the demo binary.
const Version = "0.1.0"
