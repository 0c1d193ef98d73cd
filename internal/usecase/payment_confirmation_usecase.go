package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/domain/pricing"
	"inspection_billing/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payment_confirmation_usecase.go -destination=../adapter/http/handlers/mocks/mock_payment_confirmation_usecase.go -package=mocks

// ConfirmationResult is returned by the confirmation paths. AlreadyRecorded is
// set when the processor payment had been recorded before; that is a success.
type ConfirmationResult struct {
	InspectionID       string
	ProcessorPaymentID string
	Entry              *entities.PaymentEntry
	Settlement         entities.Settlement
	AlreadyRecorded    bool
}

// CheckoutResult is returned by CreateCheckout. Confirmation is set when the
// processor approved the payment synchronously and it was recorded.
type CheckoutResult struct {
	Payment      entities.ProcessorPayment
	Settlement   entities.Settlement
	Confirmation *ConfirmationResult
}

// CheckoutOptions tunes how checkout payloads are completed before they reach
// the processor.
type CheckoutOptions struct {
	// MockMode relaxes payload validation; the gateway is expected to be mocked too.
	MockMode        bool
	Sandbox         bool
	TestPayerEmail  string
	TestPayerUserID string
}

// IPaymentConfirmationUseCase records processor payments into inspection ledgers.
//
// Requested behavior:
//   - A processor payment is recorded at most once per inspection, no matter how
//     many times it is confirmed (client confirm, webhook, synchronous checkout).
//   - Only approved payments whose metadata points to the inspection are recorded.
type IPaymentConfirmationUseCase interface {
	ConfirmPayment(ctx context.Context, inspectionID, token, processorPaymentID string) (ConfirmationResult, error)
	HandleNotification(ctx context.Context, processorPaymentID string) (ConfirmationResult, error)
	CreateCheckout(ctx context.Context, inspectionID, token string, mpPayload json.RawMessage) (CheckoutResult, error)
}

type PaymentConfirmationUseCase struct {
	repo    interfaces.IInspectionRepository
	states  *SettlementUseCase
	gateway interfaces.IPaymentGateway
	notify  notifier
	opts    CheckoutOptions
	log     *zap.Logger
}

var _ IPaymentConfirmationUseCase = (*PaymentConfirmationUseCase)(nil)

func NewPaymentConfirmationUseCase(repo interfaces.IInspectionRepository, discounts interfaces.IDiscountCodeRepository, gateway interfaces.IPaymentGateway, dispatcher interfaces.IAutomationDispatcher, opts CheckoutOptions, log *zap.Logger) *PaymentConfirmationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentConfirmationUseCase{
		repo:    repo,
		states:  NewSettlementUseCase(repo, discounts, log),
		gateway: gateway,
		notify:  notifier{dispatcher: dispatcher, log: log},
		opts:    opts,
		log:     log,
	}
}

func (u *PaymentConfirmationUseCase) ConfirmPayment(ctx context.Context, inspectionID, token, processorPaymentID string) (ConfirmationResult, error) {
	u.log.Info("[confirmation][usecase] confirm start",
		zap.String("inspection_id", inspectionID), zap.String("processor_payment_id", processorPaymentID))

	processorPaymentID = strings.TrimSpace(processorPaymentID)
	if !isProcessorPaymentID(processorPaymentID) {
		return ConfirmationResult{}, ErrInvalidProcessorPaymentID
	}
	if u.gateway == nil {
		return ConfirmationResult{}, ErrPaymentGatewayNotConfigured
	}

	state, err := u.states.loadForClient(ctx, inspectionID, token)
	if err != nil {
		return ConfirmationResult{}, err
	}
	if state.Inspection.HasProcessorPayment(processorPaymentID) {
		u.log.Info("[confirmation][usecase] already recorded",
			zap.String("inspection_id", state.Inspection.ID), zap.String("processor_payment_id", processorPaymentID))
		return ConfirmationResult{
			InspectionID:       state.Inspection.ID,
			ProcessorPaymentID: processorPaymentID,
			Settlement:         state.Settlement,
			AlreadyRecorded:    true,
		}, nil
	}

	p, err := u.fetch(ctx, processorPaymentID)
	if err != nil {
		return ConfirmationResult{}, err
	}
	if err := checkProcessorStatus(p); err != nil {
		u.log.Info("[confirmation][usecase] payment not recordable",
			zap.String("processor_payment_id", p.ID), zap.String("status", p.Status), zap.Error(err))
		return ConfirmationResult{}, err
	}
	if !belongsTo(p, state.Inspection, true) {
		u.log.Warn("[confirmation][usecase] payment metadata mismatch",
			zap.String("inspection_id", state.Inspection.ID),
			zap.String("processor_payment_id", p.ID),
			zap.String("metadata_inspection_id", p.InspectionID))
		return ConfirmationResult{}, ErrPaymentMismatch
	}
	return u.reconcile(ctx, state, p)
}

// HandleNotification resolves a processor notification. The inspection is taken
// from the payment metadata, falling back to the external reference.
func (u *PaymentConfirmationUseCase) HandleNotification(ctx context.Context, processorPaymentID string) (ConfirmationResult, error) {
	processorPaymentID = strings.TrimSpace(processorPaymentID)
	u.log.Info("[confirmation][usecase] notification start", zap.String("processor_payment_id", processorPaymentID))
	if !isProcessorPaymentID(processorPaymentID) {
		return ConfirmationResult{}, ErrInvalidProcessorPaymentID
	}
	if u.gateway == nil {
		return ConfirmationResult{}, ErrPaymentGatewayNotConfigured
	}

	p, err := u.fetch(ctx, processorPaymentID)
	if err != nil {
		return ConfirmationResult{}, err
	}
	if err := checkProcessorStatus(p); err != nil {
		return ConfirmationResult{}, err
	}

	inspectionID := inspectionIDOf(p)
	if inspectionID == "" {
		return ConfirmationResult{}, ErrPaymentMismatch
	}
	state, err := u.states.load(ctx, "", inspectionID)
	if err != nil {
		return ConfirmationResult{}, err
	}
	if !belongsTo(p, state.Inspection, false) {
		return ConfirmationResult{}, ErrPaymentMismatch
	}
	return u.reconcile(ctx, state, p)
}

// CreateCheckout submits a processor payment for the remaining balance of the
// inspection. The amount is always taken from the settlement, never from the payload.
func (u *PaymentConfirmationUseCase) CreateCheckout(ctx context.Context, inspectionID, token string, mpPayload json.RawMessage) (CheckoutResult, error) {
	u.log.Info("[checkout][usecase] start", zap.String("inspection_id", inspectionID), zap.Int("payload_len", len(mpPayload)))
	mockMode := u.opts.MockMode
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			return CheckoutResult{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return CheckoutResult{}, ErrPaymentGatewayNotConfigured
	}

	state, err := u.states.loadForClient(ctx, inspectionID, token)
	if err != nil {
		return CheckoutResult{}, err
	}
	if state.Settlement.RemainingBalance <= 0 {
		u.log.Info("[checkout][usecase] nothing to pay", zap.String("inspection_id", state.Inspection.ID))
		return CheckoutResult{}, ErrInspectionAlreadyPaid
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return CheckoutResult{}, ErrInvalidMPPayload
	}
	if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		u.log.Info("[checkout][usecase] missing payment_method_id", zap.String("inspection_id", state.Inspection.ID))
		return CheckoutResult{}, ErrInvalidMPPayload
	}
	if !mockMode {
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			u.log.Info("[checkout][usecase] missing/invalid payer", zap.String("inspection_id", state.Inspection.ID))
			return CheckoutResult{}, ErrInvalidMPPayload
		}
	}

	reqMap["external_reference"] = state.Inspection.ID
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Inspection %s", state.Inspection.ID)
	}
	reqMap["transaction_amount"] = state.Settlement.RemainingBalance
	metadata, _ := reqMap["metadata"].(map[string]any)
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata[entities.MetadataInspectionIDKey] = state.Inspection.ID
	metadata[entities.MetadataClientViewTokenKey] = state.Inspection.ClientViewToken
	reqMap["metadata"] = metadata

	payload, err := json.Marshal(reqMap)
	if err != nil {
		return CheckoutResult{}, err
	}

	p, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Error("[checkout][usecase] payment gateway failed", zap.String("inspection_id", state.Inspection.ID), zap.Error(err))
		return CheckoutResult{}, mapGatewayError(err)
	}
	u.log.Info("[checkout][usecase] payment created",
		zap.String("inspection_id", state.Inspection.ID),
		zap.String("processor_payment_id", p.ID),
		zap.String("status", p.Status))

	result := CheckoutResult{Payment: p, Settlement: state.Settlement}
	if p.Status != entities.ProcessorStatusApproved {
		return result, nil
	}
	if p.InspectionID == "" {
		p.InspectionID = state.Inspection.ID
	}
	if p.ClientViewToken == "" {
		p.ClientViewToken = state.Inspection.ClientViewToken
	}
	confirmation, err := u.reconcile(ctx, state, p)
	if err != nil {
		return CheckoutResult{}, err
	}
	result.Confirmation = &confirmation
	result.Settlement = confirmation.Settlement
	return result, nil
}

// reconcile records an approved processor payment with the guarded append and
// refreshes the cached payment state. A rejected guard means another path
// recorded the payment first.
func (u *PaymentConfirmationUseCase) reconcile(ctx context.Context, state InspectionState, p entities.ProcessorPayment) (ConfirmationResult, error) {
	if !pricing.IsValidAmount(p.Amount) {
		u.log.Warn("[confirmation][usecase] approved payment without amount", zap.String("processor_payment_id", p.ID))
		return ConfirmationResult{}, ErrInvalidPaymentAmount
	}

	entry := entities.PaymentEntry{
		ID:                 uuid.NewString(),
		Amount:             pricing.Round2(p.Amount),
		PaidAt:             p.ApprovedAt.UTC(),
		Currency:           normalizeCurrency(p.Currency),
		PaymentMethod:      strings.TrimSpace(p.PaymentMethod),
		ProcessorPaymentID: p.ID,
	}
	if p.ApprovedAt.IsZero() {
		entry.PaidAt = time.Now().UTC()
	}
	if entry.Currency == "" {
		entry.Currency = entities.DefaultCurrency
	}
	if entry.PaymentMethod == "" {
		entry.PaymentMethod = entities.DefaultPaymentMethod
	}

	appended, err := u.appendEntry(ctx, state, entry)
	if err != nil {
		u.log.Error("[confirmation][usecase] guarded append failed",
			zap.String("inspection_id", state.Inspection.ID), zap.String("processor_payment_id", p.ID), zap.Error(err))
		return ConfirmationResult{}, err
	}

	fresh, err := u.states.load(ctx, "", state.Inspection.ID)
	if err != nil {
		return ConfirmationResult{}, err
	}
	result := ConfirmationResult{
		InspectionID:       fresh.Inspection.ID,
		ProcessorPaymentID: p.ID,
		Settlement:         fresh.Settlement,
		AlreadyRecorded:    !appended,
	}
	if !appended {
		u.log.Info("[confirmation][usecase] already recorded",
			zap.String("inspection_id", fresh.Inspection.ID), zap.String("processor_payment_id", p.ID))
		return result, nil
	}
	result.Entry = &entry

	info := paymentInfoFrom(fresh.Inspection.PaymentHistory, fresh.Settlement)
	if err := u.repo.UpdatePaymentState(ctx, fresh.Inspection.ID, fresh.Inspection.Version, info, fresh.Settlement.IsPaid); err != nil {
		// The ledger is the source of truth; a stale cache is repaired by the next write.
		u.log.Error("[confirmation][usecase] payment state refresh failed",
			zap.String("inspection_id", fresh.Inspection.ID), zap.Error(err))
	}
	if fresh.Settlement.OverpaidAmount > 0 {
		u.log.Warn("[confirmation][usecase] inspection overpaid",
			zap.String("inspection_id", fresh.Inspection.ID), zap.Float64("overpaid", fresh.Settlement.OverpaidAmount))
	}

	u.notify.paidTransition(ctx, fresh.Inspection, state.Settlement, fresh.Settlement)
	u.log.Info("[confirmation][usecase] payment recorded",
		zap.String("inspection_id", fresh.Inspection.ID),
		zap.String("processor_payment_id", p.ID),
		zap.Float64("amount", entry.Amount),
		zap.Bool("is_paid", fresh.Settlement.IsPaid))
	return result, nil
}

// appendEntry runs the guarded append. An inspection whose ledger is still empty
// has its cached legacy amount written ahead of entry; when the ledger gained
// entries in the meantime the inspection is re-read and the append retried.
func (u *PaymentConfirmationUseCase) appendEntry(ctx context.Context, state InspectionState, entry entities.PaymentEntry) (bool, error) {
	insp := state.Inspection
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		if insp.HasProcessorPayment(entry.ProcessorPaymentID) {
			return false, nil
		}
		seed := legacyEntries(insp)
		if len(seed) > 0 {
			u.log.Info("[confirmation][usecase] seeding ledger with cached payment",
				zap.String("inspection_id", insp.ID), zap.Float64("amount", seed[0].Amount))
		}
		appended, err := u.repo.AppendProcessorPayment(ctx, insp.ID, seed, entry)
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			return appended, err
		}
		u.log.Info("[confirmation][usecase] ledger changed, retrying",
			zap.String("inspection_id", insp.ID), zap.Int("attempt", attempt))
		fresh, err := u.states.load(ctx, "", insp.ID)
		if err != nil {
			return false, err
		}
		insp = fresh.Inspection
	}
	return false, ErrConcurrentModification
}

func (u *PaymentConfirmationUseCase) fetch(ctx context.Context, processorPaymentID string) (entities.ProcessorPayment, error) {
	p, err := u.gateway.GetPayment(ctx, processorPaymentID)
	if err != nil {
		u.log.Error("[confirmation][usecase] payment gateway get failed",
			zap.String("processor_payment_id", processorPaymentID), zap.Error(err))
		if isGatewayNotFound(err) {
			return entities.ProcessorPayment{}, ErrProcessorPaymentNotFound
		}
		return entities.ProcessorPayment{}, mapGatewayError(err)
	}
	if p.ID == "" {
		return entities.ProcessorPayment{}, ErrProcessorPaymentNotFound
	}
	return p, nil
}

func checkProcessorStatus(p entities.ProcessorPayment) error {
	switch strings.ToLower(strings.TrimSpace(p.Status)) {
	case entities.ProcessorStatusApproved:
		return nil
	case entities.ProcessorStatusCancelled, entities.ProcessorStatusRejected,
		entities.ProcessorStatusRefunded, entities.ProcessorStatusChargedBack:
		return ErrPaymentCanceled
	default:
		return ErrPaymentNotCompleted
	}
}

func inspectionIDOf(p entities.ProcessorPayment) string {
	if id := strings.TrimSpace(p.InspectionID); id != "" {
		return id
	}
	return strings.TrimSpace(p.ExternalReference)
}

// belongsTo reports whether the processor payment was created for the inspection.
// With requireToken the payment must also carry the inspection's client view token.
func belongsTo(p entities.ProcessorPayment, insp entities.Inspection, requireToken bool) bool {
	if inspectionIDOf(p) != insp.ID {
		return false
	}
	token := strings.TrimSpace(p.ClientViewToken)
	if token == "" {
		return !requireToken
	}
	return token == insp.ClientViewToken
}

// isProcessorPaymentID reports whether id looks like a Mercado Pago payment id.
func isProcessorPaymentID(id string) bool {
	if id == "" {
		return false
	}
	n, err := strconv.ParseInt(id, 10, 64)
	return err == nil && n > 0
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentConfirmationUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.opts.TestPayerEmail != "" {
			payer["email"] = u.opts.TestPayerEmail
		} else if u.opts.Sandbox {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *PaymentConfirmationUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.opts.Sandbox {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}
	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	u.log.Info("[checkout][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":404") || strings.Contains(msg, "not_found") || strings.Contains(msg, "payment not found")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
