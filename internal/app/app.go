package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"cotiza-jara/go_backend/internal/app/config"
	apphttp "cotiza-jara/go_backend/internal/app/http"
	"cotiza-jara/go_backend/internal/app/http/handlers"
	"cotiza-jara/go_backend/internal/domain/quotation"
	"cotiza-jara/go_backend/internal/domain/quotation/pdf"
	pdfgen "cotiza-jara/go_backend/internal/domain/quotation/pdf/gofpdf"
	"cotiza-jara/go_backend/internal/domain/quotation/render"
	"cotiza-jara/go_backend/internal/infra/db/postgres"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	db, err := postgres.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("db", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	svc := quotation.NewService(postgres.NewQuotationRepo(db))
	renderer := render.NewService(pdfgen.New(),
		pdf.Issuer{
			Name:     cfg.Issuer.Name,
			Location: cfg.Issuer.Location,
			SignedBy: cfg.Issuer.SignedBy,
			Phone:    cfg.Issuer.Phone,
			Email:    cfg.Issuer.Email,
		},
		pdf.BankDetails{
			Bank:    cfg.Bank.Name,
			Holder:  cfg.Bank.Holder,
			Account: cfg.Bank.Account,
			CLABE:   cfg.Bank.CLABE,
		})

	router := apphttp.NewRouter(cfg, handlers.New(svc, renderer))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("listening", "addr", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
}
