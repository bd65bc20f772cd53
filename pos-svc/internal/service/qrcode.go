package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

// DefaultQRGenerator renders a receipt QR pointing at the order resource.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Link(orderID int) string {
	return fmt.Sprintf("%s/api/orders/%d", g.BaseURL, orderID)
}

func (g DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	return qrcode.Encode(g.Link(orderID), qrcode.Medium, 256)
}
