// Package share builds what a paid surprise is handed around with: the
// public link, its QR code, a printable PDF and social share intents.
package share
