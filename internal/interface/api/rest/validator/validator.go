package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"shareit-api/internal/interface/api/rest/dto/filerecord"
)

const (
	maxAliasLen    = 64
	maxPasswordLen = 72 // bcrypt safe
	// serialized pin responses are small JSON documents
	maxPinResponseLen = 1 << 12
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// Aliases are free-form user text; only presence and a length cap are
// checked, uniqueness is the store's job.
func validateAlias(alias string, errs map[string]string) {
	if alias == "" {
		errs["alias"] = "alias is required"
	} else if utf8.RuneCountInString(alias) > maxAliasLen {
		errs["alias"] = "alias length must be 1–64 characters"
	}
}

func validatePassword(password string, errs map[string]string) {
	if password != "" && utf8.RuneCountInString(password) > maxPasswordLen {
		errs["password"] = "password length must be at most 72 characters"
	}
}

func ValidateCreateFile(r filerecord.CreateRequest) map[string]string {
	errs := make(map[string]string)

	validateAlias(strings.TrimSpace(r.Alias), errs)
	validatePassword(r.Password, errs)

	if strings.TrimSpace(r.IpfsResponse) == "" {
		errs["ipfsResponse"] = "ipfsResponse is required"
	} else if len(r.IpfsResponse) > maxPinResponseLen {
		errs["ipfsResponse"] = "ipfsResponse is too large"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateRetrieve(r filerecord.RetrieveRequest) map[string]string {
	errs := make(map[string]string)

	validateAlias(strings.TrimSpace(r.Alias), errs)
	validatePassword(r.Password, errs)

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidatePinForm(alias, password string) map[string]string {
	errs := make(map[string]string)

	validateAlias(strings.TrimSpace(alias), errs)
	validatePassword(password, errs)

	if len(errs) == 0 {
		return nil
	}

	return errs
}
