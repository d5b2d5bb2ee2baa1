package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"pazes_checkout/internal/domain/attribution"
	"pazes_checkout/internal/domain/entities"
	"pazes_checkout/internal/usecase/interfaces"
)

const welcomeSubject = `Bem-vindo(a) ao Curso "Fazendo as Pazes com o seu TDAH"!`

// SideEffectDispatcher fans out the post-payment side effects: ledger append
// and welcome email. The two sinks run concurrently and one failing does not
// cancel or roll back the other. There is no atomicity across them, only
// per-sink logging for manual remediation.
type SideEffectDispatcher struct {
	ledger   interfaces.ILedger
	notifier interfaces.INotifier
	location *time.Location
	now      func() time.Time
}

func NewSideEffectDispatcher(ledger interfaces.ILedger, notifier interfaces.INotifier) *SideEffectDispatcher {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.UTC
	}
	return &SideEffectDispatcher{ledger: ledger, notifier: notifier, location: loc, now: time.Now}
}

// Dispatch is best-effort and never reports failure to its caller: the
// webhook sender's retry semantics are about notification receipt, not about
// internal bookkeeping succeeding.
func (d *SideEffectDispatcher) Dispatch(ctx context.Context, customer entities.CustomerProfile, payment entities.NotificationPayment, attr attribution.Attribution, installmentCount int) {
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		d.appendLedgerRow(ctx, customer, payment, attr, installmentCount)
	}()
	go func() {
		defer wg.Done()
		d.sendWelcomeEmail(ctx, customer, payment)
	}()
	wg.Wait()
}

func (d *SideEffectDispatcher) appendLedgerRow(ctx context.Context, customer entities.CustomerProfile, payment entities.NotificationPayment, attr attribution.Attribution, installmentCount int) {
	if d.ledger == nil {
		log.Printf("[webhook][dispatcher] ledger not configured payment_id=%s", payment.ID)
		return
	}

	row := []interface{}{
		d.now().In(d.location).Format("02/01/2006 15:04:05"),
		customer.Name,
		customer.Email,
		modalityFromDescription(payment.Description),
		payment.Value,
		payment.Status,
		payment.ID,
		payment.BillingType,
		installmentCount,
		attr.Objective,
		attr.TrafficSource,
		attr.Coupon,
		attr.ClientIP,
	}

	if err := d.ledger.Append(ctx, row); err != nil {
		log.Printf("[webhook][dispatcher] ledger append failed sale_id=%s sink=ledger err=%v", payment.SaleKey(), err)
		return
	}
	log.Printf("[webhook][dispatcher] ledger row appended payment_id=%s", payment.ID)
}

func (d *SideEffectDispatcher) sendWelcomeEmail(ctx context.Context, customer entities.CustomerProfile, payment entities.NotificationPayment) {
	if d.notifier == nil {
		log.Printf("[webhook][dispatcher] notifier not configured payment_id=%s", payment.ID)
		return
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; line-height: 1.6;">
			<h2>Olá, %s!</h2>
			<p>Sua inscrição no curso <strong>Fazendo as Pazes com o seu TDAH</strong> foi confirmada com sucesso!</p>
			<p>Estamos muito felizes em ter você conosco nesta jornada de aprendizado e bem-estar.</p>
			<p>Em breve, você receberá mais informações sobre o acesso ao material do curso e as datas importantes.</p>
			<p>Atenciosamente,<br>Equipe Fazendo as Pazes com o seu TDAH</p>
		</div>`, customer.Name)

	if err := d.notifier.Send(ctx, customer.Email, welcomeSubject, body); err != nil {
		log.Printf("[webhook][dispatcher] welcome email failed sale_id=%s sink=notifier err=%v", payment.SaleKey(), err)
		return
	}
	log.Printf("[webhook][dispatcher] welcome email sent payment_id=%s", payment.ID)
}

// modalityFromDescription recovers the modality from the charge description,
// the only field the gateway carries it in.
func modalityFromDescription(description string) string {
	if strings.Contains(description, string(entities.ModalityOnline)) {
		return string(entities.ModalityOnline)
	}
	return string(entities.ModalityPresencial)
}
