package core

import "github.com/dustin/go-humanize"

const (
	PriceCityReady  = 1000
	PricePrimeReady = 1500

	TierCityReady  = "City-Ready"
	TierPrimeReady = "Prime-Ready (KYC/KYB)"
)

// primeReady reports whether a vendor qualifies for the KYC/KYB tier.
func primeReady(v *Vendor) bool {
	return (v.VendorType == VendorSub || v.VendorType == VendorPrime) && v.KYBKYC
}

// Price returns the onboarding fee in whole dollars.
func Price(v *Vendor) int {
	if primeReady(v) {
		return PricePrimeReady
	}
	return PriceCityReady
}

// Tier returns the label shown on the verification page and certificate.
func Tier(v *Vendor) string {
	if primeReady(v) {
		return TierPrimeReady
	}
	return TierCityReady
}

// Dollars formats whole dollars with thousands separators: 1500 -> "$1,500".
func Dollars(n int) string {
	if n < 0 {
		return "-$" + humanize.Comma(int64(-n))
	}
	return "$" + humanize.Comma(int64(n))
}
