package app

import (
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/metinatakli/theatrical-statements/api"
	"github.com/metinatakli/theatrical-statements/internal/domain"
	"github.com/metinatakli/theatrical-statements/internal/statement"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const statementIDHeader = "X-Statement-Id"

// CreateStatement prices the posted performances against the play catalog
// and renders the statement in the requested format.
func (app *application) CreateStatement(w http.ResponseWriter, r *http.Request, params api.CreateStatementParams) {
	logger := app.contextGetLogger(r)

	format, err := statementFormat(r, params.Format)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.CreateStatementJSONRequestBody

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	ctx, span := app.telemetry.startStatementSpan(r.Context(), input.Customer, len(input.Performances))
	defer span.End()

	plays, err := app.playRepo.GetByIDs(ctx, uniquePlayIDs(input.Performances))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	performances := make([]*domain.Performance, len(input.Performances))

	for i, p := range input.Performances {
		catalogPlay, ok := plays[p.PlayId]
		if !ok {
			logger.Warn("statement rejected: unknown play", "play_id", p.PlayId)
			app.notFoundResponseWithErr(w, r, fmt.Errorf("play %q not found", p.PlayId))
			return
		}

		performances[i], err = domain.NewPerformance(catalogPlay.Play, p.Audience)
		if err != nil {
			app.unprocessableEntityResponse(w, r, err)
			return
		}
	}

	invoice := domain.NewInvoice(input.Customer, performances)

	err = invoice.Calculate()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invoice calculation failed")
		app.serverErrorResponse(w, r, fmt.Errorf("calculate invoice: %w", err))
		return
	}

	stmt, err := invoice.Statement()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	body, err := app.printer.Print(format, stmt)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	statementID := uuid.New().String()

	span.SetAttributes(
		attribute.String("statement.id", statementID),
		attribute.String("statement.format", string(format)),
		attribute.String("statement.amount_owed", stmt.AmountOwed.StringFixed(2)),
	)

	app.telemetry.recordStatement(ctx, format, statementSummary{
		performances: len(stmt.Lines),
		amountOwed:   stmt.AmountOwed.InexactFloat64(),
	})

	logger.Info("statement rendered",
		"statement_id", statementID,
		"customer", stmt.Customer,
		"performances", len(stmt.Lines),
		"amount_owed", stmt.AmountOwed.StringFixed(2),
		"format", format,
	)

	headers := make(http.Header)
	headers.Set(statementIDHeader, statementID)

	app.writeBody(w, http.StatusOK, format.ContentType(), body, headers)
}

// statementFormat prefers the format query parameter, falling back to the
// Accept header and then to plain text.
func statementFormat(r *http.Request, requested *api.CreateStatementParamsFormat) (statement.Format, error) {
	if requested != nil && *requested != "" {
		return statement.ParseFormat(string(*requested))
	}

	for _, accepted := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(accepted))
		if err != nil {
			continue
		}

		switch mediaType {
		case "application/xml", "text/xml":
			return statement.FormatXML, nil
		case "application/json":
			return statement.FormatJSON, nil
		case "text/plain":
			return statement.FormatText, nil
		}
	}

	return statement.FormatText, nil
}

func uniquePlayIDs(performances []api.PerformanceRequest) []string {
	seen := make(map[string]bool, len(performances))
	ids := make([]string, 0, len(performances))

	for _, p := range performances {
		if seen[p.PlayId] {
			continue
		}

		seen[p.PlayId] = true
		ids = append(ids, p.PlayId)
	}

	return ids
}
