// Package completeness summarizes how complete an account is. The scorer is
// a pure function over the rows passed in; the result is only as fresh as
// those rows and the caller refetches before scoring.
package completeness

import "instructhub/internal/domain"

// Score holds the three completeness components, each in [0,100].
type Score struct {
	Basic        int `json:"basic"`
	Detailed     int `json:"detailed"`
	Verification int `json:"verification"`
}

// Instructor detailed weights. They sum to exactly 100.
const (
	instructorBioWeight        = 20
	instructorLocationWeight   = 15
	instructorRateWeight       = 15
	instructorExpertiseWeight  = 20
	instructorExperienceWeight = 15
	instructorEducationWeight  = 15
)

const companyFieldWeight = 25 // four fields, 25 each

// ScoreProfile computes the completeness score. Role profile arguments may be
// nil (degraded accounts, admins); detailed is then 0. Basic is a flat 50 for
// the presence of the profile itself.
func ScoreProfile(profile *domain.Profile, inst *domain.InstructorProfile, comp *domain.CompanyProfile, latest *domain.VerificationRequest) Score {
	s := Score{Basic: 50}

	switch profile.UserType {
	case domain.UserTypeInstructor:
		if inst != nil {
			if inst.Bio != "" {
				s.Detailed += instructorBioWeight
			}
			if inst.Location != "" {
				s.Detailed += instructorLocationWeight
			}
			if inst.HourlyRate > 0 {
				s.Detailed += instructorRateWeight
			}
			if len(inst.Expertise) > 0 {
				s.Detailed += instructorExpertiseWeight
			}
			if inst.Experience != "" {
				s.Detailed += instructorExperienceWeight
			}
			if inst.Education != "" {
				s.Detailed += instructorEducationWeight
			}
		}
	case domain.UserTypeCompany:
		if comp != nil {
			if comp.CompanyName != "" {
				s.Detailed += companyFieldWeight
			}
			if comp.Description != "" {
				s.Detailed += companyFieldWeight
			}
			if comp.Industry != "" {
				s.Detailed += companyFieldWeight
			}
			if comp.Website != "" {
				s.Detailed += companyFieldWeight
			}
		}
	}

	switch {
	case profile.IsVerified:
		s.Verification = 100
	case latest != nil && latest.Status == domain.VerificationStatusPending:
		s.Verification = 50
	default:
		s.Verification = 0
	}

	return s
}
