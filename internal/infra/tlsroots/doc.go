// Package tlsroots builds trusted certificate pools for TLS clients.
//
// The Pool type starts from the system roots and layers in CA
// certificates from PEM files, producing a ready-to-use tls.Config for
// a self-hosted backend signed by a private CA.
package tlsroots
