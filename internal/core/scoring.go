package core

import "context"

// ComputeScore returns the percentage of RequiredKinds present in kinds.
// Duplicates and order are irrelevant; unknown kinds are ignored.
func ComputeScore(kinds []DocumentKind) int {
	present := make(map[DocumentKind]struct{}, len(RequiredKinds))
	for _, k := range kinds {
		if k.Valid() {
			present[k] = struct{}{}
		}
	}
	return 100 * len(present) / len(RequiredKinds)
}

// Score computes the completeness score for a vendor from its stored documents.
// It does not persist anything.
func (s *Service) Score(ctx context.Context, vendorID string) (int, error) {
	docs, err := s.store.ListDocuments(ctx, vendorID)
	if err != nil {
		return 0, err
	}
	kinds := make([]DocumentKind, len(docs))
	for i, d := range docs {
		kinds[i] = d.Kind
	}
	return ComputeScore(kinds), nil
}
