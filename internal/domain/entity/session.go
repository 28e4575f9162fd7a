package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliverySession is the per-customer state that links the selected address to its verdict.
type DeliverySession struct {
	UserID            uuid.UUID  `json:"user_id"`
	SelectedAddressID *uuid.UUID `json:"selected_address_id,omitempty"`
	// VerdictAddressID is the address the cached verdict was computed for.
	VerdictAddressID *uuid.UUID `json:"verdict_address_id,omitempty"`
	Verdict          Verdict    `json:"verdict"`
	DistanceKm       *float64   `json:"distance_km,omitempty"`
	// Generation increments on every selection change. Pending acquisitions that
	// captured an older value must not write their result.
	Generation uint64       `json:"generation"`
	LastFix    *LocationFix `json:"last_fix,omitempty"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// LocationFix is the most recent successfully acquired device position.
type LocationFix struct {
	Point      GeoPoint  `json:"point"`
	AccuracyM  float64   `json:"accuracy_m,omitempty"`
	AcquiredAt time.Time `json:"acquired_at"`
	Verdict    Verdict   `json:"verdict"`
}

// NewDeliverySession returns an empty session for userID.
func NewDeliverySession(userID uuid.UUID) *DeliverySession {
	return &DeliverySession{UserID: userID, Verdict: VerdictUnknown}
}

// Select makes addressID the active address and invalidates any pending acquisition.
// A nil addressID clears the selection.
func (s *DeliverySession) Select(addressID *uuid.UUID) {
	s.SelectedAddressID = addressID
	s.Generation++
	s.ResetVerdict()
}

// ApplyEvaluation caches eval as the verdict of the currently selected address.
func (s *DeliverySession) ApplyEvaluation(eval Evaluation) {
	s.Verdict = eval.Verdict
	s.DistanceKm = eval.DistanceKm
	if s.SelectedAddressID != nil {
		id := *s.SelectedAddressID
		s.VerdictAddressID = &id
	} else {
		s.VerdictAddressID = nil
	}
}

// ResetVerdict returns the verdict to unknown.
func (s *DeliverySession) ResetVerdict() {
	s.Verdict = VerdictUnknown
	s.DistanceKm = nil
	s.VerdictAddressID = nil
}

// IsSelected reports whether addressID is the selected address.
func (s *DeliverySession) IsSelected(addressID uuid.UUID) bool {
	return s.SelectedAddressID != nil && *s.SelectedAddressID == addressID
}

// VerdictFor returns the cached verdict when it belongs to addressID.
func (s *DeliverySession) VerdictFor(addressID uuid.UUID) (Verdict, bool) {
	if s.VerdictAddressID == nil || *s.VerdictAddressID != addressID {
		return VerdictUnknown, false
	}

	return s.Verdict, true
}

// Clone returns a deep copy of s.
func (s *DeliverySession) Clone() *DeliverySession {
	if s == nil {
		return nil
	}

	out := *s
	if s.SelectedAddressID != nil {
		id := *s.SelectedAddressID
		out.SelectedAddressID = &id
	}
	if s.VerdictAddressID != nil {
		id := *s.VerdictAddressID
		out.VerdictAddressID = &id
	}
	if s.DistanceKm != nil {
		d := *s.DistanceKm
		out.DistanceKm = &d
	}
	if s.LastFix != nil {
		fix := *s.LastFix
		out.LastFix = &fix
	}

	return &out
}
