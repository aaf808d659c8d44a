package channel

import (
	"errors"
	"fmt"
	"strings"
)

// License ids understood by the publishing platform.
const (
	LicenseCCBY               = "CC BY"
	LicenseCCBYSA             = "CC BY-SA"
	LicenseCCBYND             = "CC BY-ND"
	LicenseCCBYNC             = "CC BY-NC"
	LicenseCCBYNCSA           = "CC BY-NC-SA"
	LicenseCCBYNCND           = "CC BY-NC-ND"
	LicenseAllRightsReserved  = "All Rights Reserved"
	LicensePublicDomain       = "Public Domain"
	LicenseSpecialPermissions = "Special Permissions"
)

var knownLicenses = []string{
	LicenseCCBY,
	LicenseCCBYSA,
	LicenseCCBYND,
	LicenseCCBYNC,
	LicenseCCBYNCSA,
	LicenseCCBYNCND,
	LicenseAllRightsReserved,
	LicensePublicDomain,
	LicenseSpecialPermissions,
}

// ErrUnknownLicense is returned for license ids outside knownLicenses.
var ErrUnknownLicense = errors.New("unknown license")

// License is attached to every video node.
type License struct {
	ID              string `json:"license_id"`
	CopyrightHolder string `json:"copyright_holder,omitempty"`
	Description     string `json:"description,omitempty"`
}

// NewLicense normalizes id (case-insensitive) and checks the fields the
// license type requires.
func NewLicense(id, copyrightHolder string) (License, error) {
	lic := License{ID: strings.TrimSpace(id), CopyrightHolder: strings.TrimSpace(copyrightHolder)}
	for _, known := range knownLicenses {
		if strings.EqualFold(lic.ID, known) {
			lic.ID = known
			break
		}
	}
	if err := lic.Validate(); err != nil {
		return License{}, err
	}
	return lic, nil
}

// Validate checks the license id and required fields.
func (l License) Validate() error {
	switch l.ID {
	case "":
		return fmt.Errorf("%w: empty license id", ErrUnknownLicense)
	case LicensePublicDomain:
		return nil
	case LicenseSpecialPermissions:
		if l.Description == "" {
			return errors.New("special permissions license requires a description")
		}
	}
	known := false
	for _, k := range knownLicenses {
		if l.ID == k {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownLicense, l.ID)
	}
	if l.CopyrightHolder == "" {
		return fmt.Errorf("license %q requires a copyright holder", l.ID)
	}
	return nil
}
