package service

import (
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(restaurantID string) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the restaurant's public menu as PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(restaurantID string) ([]byte, error) {
	return qrcode.Encode(g.MenuURL(restaurantID), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) MenuURL(restaurantID string) string {
	return strings.TrimRight(g.BaseURL, "/") + "/restaurants/" + url.PathEscape(restaurantID) + "/menu"
}
