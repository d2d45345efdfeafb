// Package core provides the business logic for vendor onboarding.
//
// This package holds the domain model and every onboarding operation,
// independent of HTTP or any particular datastore. It is used by the web
// handlers and by the onboardctl admin CLI.
//
// # Lifecycle
//
// A vendor moves through intake, document upload, admin payment confirmation
// and certificate issuance:
//
//  1. [Service.Intake] validates the form and creates an unpaid, unverified vendor.
//  2. [Service.UploadDocuments] stores up to four document kinds on disk and
//     records one [Document] row per stored file.
//  3. [Service.Review] and [Service.Verify] report the completeness score;
//     Verify also persists the freshly computed score.
//  4. [Service.MarkPaid] is the only path that sets Paid and re-derives Verified.
//  5. [Service.IssueCertificate] renders a PDF for verified vendors only.
//
// # Scoring and pricing
//
// [ComputeScore] is the percentage of [RequiredKinds] present, using integer
// division. [Price] and [Tier] depend only on vendor type and the KYC/KYB opt-in.
//
// # Error Handling
//
// Operations return the sentinel errors [ErrMissingRequired],
// [ErrVendorNotFound], [ErrNotVerified] and [ErrUnauthorized], usually wrapped.
// [MapError] turns any error into a [UserMessage] with a support code.
package core
