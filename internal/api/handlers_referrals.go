package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/refboard/internal/models"
	"github.com/terraincognita07/refboard/internal/services"
	"github.com/terraincognita07/refboard/internal/store"
)

type logClickRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
}

func (handler *Handler) LogClick(c *fiber.Ctx) error {
	request := logClickRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if err := handler.validate.Struct(request); err != nil {
		return handler.badRequest(c)
	}
	if _, found := handler.catalog.ByID(request.PropertyID); !found {
		return handler.apiError(c, fiber.StatusNotFound, "errors.unknown_property")
	}

	click := models.ClickEvent{
		PropertyID: request.PropertyID,
		Timestamp:  time.Now().UnixMilli(),
	}
	if err := handler.stores.Clicks.Append(click); err != nil {
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.click_logged", fiber.Map{"click": click})
}

func (handler *Handler) ListClicks(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"clicks": handler.stores.Clicks.All()})
}

type captureLeadRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (handler *Handler) CaptureLead(c *fiber.Ctx) error {
	request := captureLeadRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if err := handler.validate.Struct(request); err != nil {
		return handler.badRequest(c)
	}

	lead := models.Lead{
		Email:     request.Email,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := handler.stores.Leads.Add(lead); err != nil {
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.lead_captured", fiber.Map{"lead": lead})
}

func (handler *Handler) ListLeads(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"leads": handler.stores.Leads.All()})
}

type recordConversionRequest struct {
	LeadEmail        string  `json:"leadEmail" validate:"required,email"`
	PropertyID       string  `json:"propertyId" validate:"required"`
	InvestmentAmount float64 `json:"investmentAmount" validate:"gt=0"`
}

func (handler *Handler) RecordConversion(c *fiber.Ctx) error {
	request := recordConversionRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if err := handler.validate.Struct(request); err != nil {
		return handler.badRequest(c)
	}
	if _, found := handler.catalog.ByID(request.PropertyID); !found {
		return handler.apiError(c, fiber.StatusNotFound, "errors.unknown_property")
	}

	conversion := models.Conversion{
		LeadEmail:        request.LeadEmail,
		PropertyID:       request.PropertyID,
		InvestmentAmount: request.InvestmentAmount,
		Timestamp:        time.Now().UnixMilli(),
	}
	if err := handler.stores.Conversions.Add(conversion); err != nil {
		if errors.Is(err, store.ErrLeadAlreadyConverted) {
			return handler.apiError(c, fiber.StatusConflict, "errors.lead_already_converted")
		}
		return handler.internalError(c, err)
	}

	return handler.toast(c, "toasts.conversion_recorded", fiber.Map{
		"conversion":       conversion,
		"referrerEarnings": services.ReferrerEarnings(conversion.InvestmentAmount),
		"refereeBonus":     services.RefereeBonus(conversion.InvestmentAmount),
	})
}

func (handler *Handler) ListConversions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"conversions": handler.stores.Conversions.All()})
}

// CalculateCommission previews both sides of the commission split for a
// hypothetical investment amount.
func (handler *Handler) CalculateCommission(c *fiber.Ctx) error {
	amount := c.QueryFloat("amount", -1)
	if amount < 0 {
		return handler.badRequest(c)
	}
	return c.JSON(fiber.Map{
		"investmentAmount": amount,
		"referrerEarnings": services.ReferrerEarnings(amount),
		"refereeBonus":     services.RefereeBonus(amount),
	})
}

func (handler *Handler) GetReferralCode(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"code": handler.referrals.Code(),
		"link": handler.referrals.Link(),
	})
}

type setReferralCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

func (handler *Handler) SetReferralCode(c *fiber.Ctx) error {
	request := setReferralCodeRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if err := handler.validate.Struct(request); err != nil {
		return handler.badRequest(c)
	}

	if err := handler.referrals.SetCode(request.Code); err != nil {
		if errors.Is(err, services.ErrInvalidReferralCode) {
			return handler.apiError(c, fiber.StatusUnprocessableEntity, "errors.invalid_referral_code")
		}
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.referral_code_saved", fiber.Map{
		"code": handler.referrals.Code(),
		"link": handler.referrals.Link(),
	})
}

func (handler *Handler) ClearReferralCode(c *fiber.Ctx) error {
	if err := handler.referrals.ClearCode(); err != nil {
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.referral_code_cleared", nil)
}

func (handler *Handler) SuggestReferralCode(c *fiber.Ctx) error {
	code, err := services.SuggestCode()
	if err != nil {
		return handler.internalError(c, err)
	}
	return c.JSON(fiber.Map{"code": code})
}
