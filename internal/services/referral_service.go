package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var ErrInvalidReferralCode = errors.New("invalid referral code")

var referralCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,24}$`)

const suggestedCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const suggestedCodeLength = 8

type ReferralCodeStorage interface {
	Get() string
	Set(code string) error
	Clear() error
}

type ReferralService struct {
	codes   ReferralCodeStorage
	baseURL string
}

func NewReferralService(codes ReferralCodeStorage, baseURL string) *ReferralService {
	return &ReferralService{
		codes:   codes,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (service *ReferralService) Code() string {
	return service.codes.Get()
}

func (service *ReferralService) SetCode(rawCode string) error {
	code := strings.TrimSpace(rawCode)
	if !referralCodePattern.MatchString(code) {
		return ErrInvalidReferralCode
	}
	return service.codes.Set(code)
}

func (service *ReferralService) ClearCode() error {
	return service.codes.Clear()
}

// Link builds the outbound referral link for the stored code, empty when
// no code is set.
func (service *ReferralService) Link() string {
	code := service.codes.Get()
	if code == "" {
		return ""
	}
	return fmt.Sprintf("%s/?ref=%s", service.baseURL, code)
}

// SuggestCode draws a random code from an unambiguous alphabet
// (no 0/O or 1/I) using crypto/rand with unbiased sampling.
func SuggestCode() (string, error) {
	limit := big.NewInt(int64(len(suggestedCodeAlphabet)))
	value := make([]byte, suggestedCodeLength)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = suggestedCodeAlphabet[position.Int64()]
	}
	return string(value), nil
}
