package client

// Version is the version of this library, sent in the User-Agent header
const Version = "0.4.0"

// identityPrefix precedes Version in the User-Agent header
const identityPrefix = "rated-go/"

// UserAgent is the identity sent with every request
const UserAgent = identityPrefix + Version
