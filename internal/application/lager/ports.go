package lager

import (
	"context"

	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// TxRunner führt eine Funktion innerhalb einer DB-Transaktion aus und reicht
// an die Transaktion gebundene Repositories hinein. Bestandsänderung und
// Protokolleintrag werden damit atomar geschrieben — es gibt keinen Zustand,
// in dem nur eine der beiden Schreiboperationen wirksam ist.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		wareRepo repository.WareRepository,
		logRepo repository.WarenLogRepository,
	) error) error
}

// KassaTxRunner erweitert den Transaktionsrahmen um die Kassen-Repositories
// (für den Webhook: Bestand + Protokoll + Verkauf + Sync-Zeitstempel in einer Transaktion).
type KassaTxRunner interface {
	RunKassa(ctx context.Context, fn func(
		wareRepo repository.WareRepository,
		logRepo repository.WarenLogRepository,
		kassaRepo repository.KassaRepository,
		saleRepo repository.KassaSaleRepository,
	) error) error
}
