package paysdk

// Version is the SDK release identifier sent with every request.
const Version = "0.4.1"

const userAgent = "tyro-paysdk-go/" + Version
