package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateQR encodes content as a PNG QR code
	GenerateQR(content string) ([]byte, error)
}
