package app

import (
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"

	"tickets_events/internal/domain"
)

// Affiliate parameters appended to booking URLs, matching the upstream
// partner program's tracking scheme.
const (
	affiliatePartner    = "travelpayouts.com"
	affiliateUTMMedium  = "affiliate"
	affiliateUTMContent = "availability_widget"
)

const qrImageSize = 256 // px

// BookingURLWithParams appends currency and affiliate tracking parameters
// to a base booking URL. Existing query parameters are preserved.
func BookingURLWithParams(base, currency string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse booking url: %w", err)
	}
	q := u.Query()
	q.Set("currency", currency)
	q.Set("partner", affiliatePartner)
	q.Set("utm_campaign", affiliatePartner)
	q.Set("utm_medium", affiliateUTMMedium)
	q.Set("utm_content", affiliateUTMContent)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// QRCodeDataURI encodes a URL as a PNG QR code data URI.
func QRCodeDataURI(u string) (string, error) {
	png, err := qrcode.Encode(u, qrcode.Low, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// enrichEvent fills the derived booking fields the host may not supply:
// the parameterized booking URL and its QR code. Enrichment is
// best-effort; failures leave the field nil and the renderers degrade.
func enrichEvent(e *domain.EventRecord, currency string) {
	if e.BookingURLWithParams == nil && e.BookingURL != nil && *e.BookingURL != "" {
		full, err := BookingURLWithParams(*e.BookingURL, currency)
		if err != nil {
			log.Warn().Err(err).Str("event_id", e.ID).Msg("booking url enrichment failed")
		} else {
			e.BookingURLWithParams = &full
		}
	}
	if e.QRCodeData == nil {
		if target, ok := e.ResolveBookingURL(); ok {
			uri, err := QRCodeDataURI(target)
			if err != nil {
				log.Warn().Err(err).Str("event_id", e.ID).Msg("qr generation failed")
			} else {
				e.QRCodeData = &uri
			}
		}
	}
}
