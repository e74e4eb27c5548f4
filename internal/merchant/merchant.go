// Package merchant supplies the simulated QR-scan collaborator: a fixed
// catalog of demo merchants, a uniform random pick, and a timer-based scan
// that stands in for real image decoding.
package merchant

import (
	"context"
	"math/rand"
	"time"
)

// Merchant is one payee record from the demo catalog.
type Merchant struct {
	Name     string `json:"merchantName"`
	UPIID    string `json:"upiId"`
	Category string `json:"category"`
}

// Catalog is the fixed set of merchants a simulated scan can resolve to.
var Catalog = []Merchant{
	{Name: "Sharma Kirana Store", UPIID: "sharma.store@okaxis", Category: "Grocery"},
	{Name: "Café Mocha", UPIID: "cafemocha@paytm", Category: "Food & Beverages"},
	{Name: "TechZone Electronics", UPIID: "techzone@ybl", Category: "Electronics"},
	{Name: "Metro Pharmacy", UPIID: "metropharma@okicici", Category: "Health"},
	{Name: "FashionHub", UPIID: "fashionhub@upi", Category: "Fashion"},
	{Name: "AutoFix Garage", UPIID: "autofix@okhdfcbank", Category: "Automobile"},
}

// Source distinguishes the two simulated scan paths, which differ only in
// latency.
type Source string

const (
	SourceCamera Source = "camera"
	SourceUpload Source = "upload"
)

// Supplier resolves simulated scans against the catalog.
type Supplier struct {
	catalog     []Merchant
	rng         *rand.Rand
	cameraDelay time.Duration
	uploadDelay time.Duration
}

// NewSupplier creates a supplier over the demo catalog with the given
// simulated latencies. Zero delays resolve immediately (used in tests).
func NewSupplier(cameraDelay, uploadDelay time.Duration) *Supplier {
	return &Supplier{
		catalog:     Catalog,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		cameraDelay: cameraDelay,
		uploadDelay: uploadDelay,
	}
}

// PickRandom returns a merchant drawn uniformly from the catalog.
func (s *Supplier) PickRandom() Merchant {
	return s.catalog[s.rng.Intn(len(s.catalog))]
}

// Scan simulates reading a QR code: it waits the source's configured delay and
// resolves to a random merchant. Cancelling the context abandons the scan;
// there is nothing to roll back since a scan has no effect until the merchant
// is used.
func (s *Supplier) Scan(ctx context.Context, source Source) (Merchant, error) {
	delay := s.cameraDelay
	if source == SourceUpload {
		delay = s.uploadDelay
	}
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Merchant{}, ctx.Err()
		}
	}
	return s.PickRandom(), nil
}
