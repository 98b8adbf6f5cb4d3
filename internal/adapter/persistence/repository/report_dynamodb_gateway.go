package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"supplier_report/internal/domain/entities"
	"supplier_report/internal/domain/reporting"
	"supplier_report/internal/logger"
	"supplier_report/internal/usecase/interfaces"
)

const (
	defaultSuppliersTableName = "suppliers"
	defaultDebtsTableName     = "supplier_debts"
	defaultPaymentsTableName  = "supplier_payments"

	debtsBySupplierIndex   = "supplier_id-index"
	paymentsByDebtIndex    = "debt_id-index"
	paymentsByCashierIndex = "created_by-index"
)

// dynamoAPI is the subset of *dynamodb.Client the gateway uses.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// ReportRenderer turns a provider report and its payments into a file.
type ReportRenderer interface {
	Render(report entities.ProviderReport, payments []entities.Payment) (entities.ExportFile, error)
}

type GatewayConfig struct {
	SuppliersTable string
	DebtsTable     string
	PaymentsTable  string
	Location       *time.Location
	ShareBaseURL   string
}

// ReportDynamoGateway serves the payment report from three DynamoDB tables.
//
// Table requirements:
//   - suppliers: PK id (number)
//   - debts: PK id (number), GSI supplier_id-index (supplier_id)
//   - payments: PK id (number), GSIs debt_id-index (debt_id) and
//     created_by-index (created_by)
//
// Date filters, ordering and paging are applied after the index query;
// a debt carries at most a few hundred payments.
type ReportDynamoGateway struct {
	ddb      dynamoAPI
	cfg      GatewayConfig
	parse    parser
	renderer ReportRenderer
	now      func() time.Time
	log      zerolog.Logger
}

var _ interfaces.IReportGateway = (*ReportDynamoGateway)(nil)

func NewReportDynamoGateway(ddb dynamoAPI, cfg GatewayConfig, renderer ReportRenderer) *ReportDynamoGateway {
	if cfg.SuppliersTable == "" {
		cfg.SuppliersTable = getenvDefault("SUPPLIERS_TABLE", defaultSuppliersTableName)
	}
	if cfg.DebtsTable == "" {
		cfg.DebtsTable = getenvDefault("DEBTS_TABLE", defaultDebtsTableName)
	}
	if cfg.PaymentsTable == "" {
		cfg.PaymentsTable = getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName)
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.ShareBaseURL == "" {
		cfg.ShareBaseURL = getenvDefault("SHARE_BASE_URL", "https://wa.me/")
	}
	return &ReportDynamoGateway{
		ddb: ddb,
		cfg: cfg,
		parse: parser{
			loc:            cfg.Location,
			suppliersTable: cfg.SuppliersTable,
			debtsTable:     cfg.DebtsTable,
			paymentsTable:  cfg.PaymentsTable,
		},
		renderer: renderer,
		now:      time.Now,
		log:      logger.WithComponent("dynamo-gateway"),
	}
}

func (g *ReportDynamoGateway) ListProviders(ctx context.Context) ([]entities.Provider, error) {
	const op = "report_gateway.ListProviders"
	var items []supplierItem
	p := dynamodb.NewScanPaginator(g.ddb, &dynamodb.ScanInput{TableName: aws.String(g.cfg.SuppliersTable)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		var batch []supplierItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("%s: unmarshal: %w", op, err)
		}
		items = append(items, batch...)
	}

	out := make([]entities.Provider, 0, len(items))
	for _, it := range items {
		provider, err := g.parse.provider(it)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, provider)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].CompanyName), strings.ToLower(out[j].CompanyName)
		if a != b {
			return a < b
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// GetProviderDetailedReport returns the provider, its debts (newest first)
// and the statistics of the active payments inside [start, end].
func (g *ReportDynamoGateway) GetProviderDetailedReport(ctx context.Context, providerID int64, start, end *time.Time) (entities.ProviderReport, error) {
	const op = "report_gateway.GetProviderDetailedReport"
	provider, err := g.getProvider(ctx, providerID)
	if err != nil {
		return entities.ProviderReport{}, fmt.Errorf("%s: %w", op, err)
	}
	debts, err := g.debtsBySupplier(ctx, providerID)
	if err != nil {
		return entities.ProviderReport{}, fmt.Errorf("%s: %w", op, err)
	}

	window := entities.DateRange{Start: start, End: end}
	var active []entities.Payment
	for _, d := range debts {
		payments, err := g.paymentsByDebt(ctx, d.ID)
		if err != nil {
			return entities.ProviderReport{}, fmt.Errorf("%s: %w", op, err)
		}
		active = append(active, reporting.FilterActiveOrDeleted(g.inRange(payments, window), entities.DeleteFilterActive)...)
	}
	stats := reporting.Statistics(active)

	g.log.Debug().
		Int64("provider_id", providerID).
		Int("debts", len(debts)).
		Int("payments", stats.PaymentCount).
		Msg("provider report loaded")

	return entities.ProviderReport{
		Provider:       provider,
		Debts:          debts,
		TotalPaid:      stats.TotalPaid,
		PaymentCount:   stats.PaymentCount,
		AveragePayment: stats.AveragePayment,
	}, nil
}

// GetDebtPayments pages a debt's payments (deleted included) newest first.
func (g *ReportDynamoGateway) GetDebtPayments(ctx context.Context, debtID int64, page, pageSize int, start, end *time.Time) (entities.DebtPaymentsPage, error) {
	const op = "report_gateway.GetDebtPayments"
	if debtID <= 0 {
		return entities.DebtPaymentsPage{}, fmt.Errorf("%s: %w", op, ErrDebtNotFound)
	}
	page, pageSize = normalizePaging(page, pageSize, entities.DefaultPageSize)

	payments, err := g.paymentsByDebt(ctx, debtID)
	if err != nil {
		return entities.DebtPaymentsPage{}, fmt.Errorf("%s: %w", op, err)
	}
	filtered := g.inRange(payments, entities.DateRange{Start: start, End: end})
	sortPaymentsNewestFirst(filtered)

	return entities.DebtPaymentsPage{
		Payments:   paginate(filtered, page, pageSize),
		Pagination: entities.NewPagination(page, pageSize, len(filtered)),
		Statistics: reporting.Statistics(filtered),
	}, nil
}

func (g *ReportDynamoGateway) GetPaymentsByCashier(ctx context.Context, cashierID int64, q entities.CashierPaymentsQuery) (entities.CashierPaymentsPage, error) {
	const op = "report_gateway.GetPaymentsByCashier"
	page, limit := normalizePaging(q.Page, q.Limit, 20)

	items, err := g.queryPayments(ctx, paymentsByCashierIndex, "created_by", cashierID)
	if err != nil {
		return entities.CashierPaymentsPage{}, fmt.Errorf("%s: %w", op, err)
	}

	window := entities.DateRange{Start: q.StartDate, End: q.EndDate}
	filtered := make([]entities.Payment, 0, len(items))
	for _, p := range g.inRange(items, window) {
		if p.Deleted && !q.IncludeDeleted {
			continue
		}
		if q.PaymentMethod != nil && p.PaymentMethod != *q.PaymentMethod {
			continue
		}
		filtered = append(filtered, p)
	}
	sortPaymentsNewestFirst(filtered)

	return entities.CashierPaymentsPage{
		Payments:   paginate(filtered, page, limit),
		Pagination: entities.NewPagination(page, limit, len(filtered)),
	}, nil
}

func (g *ReportDynamoGateway) ExportProviderReport(ctx context.Context, providerID int64, start, end *time.Time) (entities.ExportFile, error) {
	const op = "report_gateway.ExportProviderReport"
	if g.renderer == nil {
		return entities.ExportFile{}, fmt.Errorf("%s: renderer not configured", op)
	}
	report, err := g.GetProviderDetailedReport(ctx, providerID, start, end)
	if err != nil {
		return entities.ExportFile{}, fmt.Errorf("%s: %w", op, err)
	}

	window := entities.DateRange{Start: start, End: end}
	var payments []entities.Payment
	for _, d := range report.Debts {
		ps, err := g.paymentsByDebt(ctx, d.ID)
		if err != nil {
			return entities.ExportFile{}, fmt.Errorf("%s: %w", op, err)
		}
		payments = append(payments, g.inRange(ps, window)...)
	}
	sortPaymentsNewestFirst(payments)

	file, err := g.renderer.Render(report, payments)
	if err != nil {
		return entities.ExportFile{}, fmt.Errorf("%s: render: %w", op, err)
	}
	g.log.Info().Int64("provider_id", providerID).Str("file", file.FileName).Int("bytes", len(file.Content)).Msg("provider report exported")
	return file, nil
}

// DeletePayment soft-deletes a payment and gives its amount back to the
// debt balance in one transaction. The debt update is conditioned on the
// balance read, so concurrent changes fail with ErrConcurrentUpdate.
func (g *ReportDynamoGateway) DeletePayment(ctx context.Context, paymentID int64, reason string) error {
	const op = "report_gateway.DeletePayment"
	payment, err := g.getPayment(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if payment.Deleted {
		return fmt.Errorf("%s: %w", op, ErrPaymentAlreadyDeleted)
	}
	debt, err := g.getDebt(ctx, payment.DebtID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	remaining := debt.RemainingAmount.Add(payment.Amount)
	if remaining.GreaterThan(debt.InitialAmount) && debt.InitialAmount.IsPositive() {
		remaining = debt.InitialAmount
	}
	status := debtStatusFor(debt.InitialAmount, remaining, debt.Status)
	now := formatTimestamp(g.now())

	oldRemaining, err := attributevalue.Marshal(newDecimalAttr(debt.RemainingAmount))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	newRemaining, err := attributevalue.Marshal(newDecimalAttr(remaining))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = g.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(g.cfg.PaymentsTable),
					Key:                 idKey(paymentID),
					ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#deleted) OR #deleted = :false)"),
					UpdateExpression:    aws.String("SET #deleted = :true, #deleted_at = :now, #delete_reason = :reason"),
					ExpressionAttributeNames: map[string]string{
						"#id":            "id",
						"#deleted":       "deleted",
						"#deleted_at":    "deleted_at",
						"#delete_reason": "delete_reason",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":true":   &types.AttributeValueMemberBOOL{Value: true},
						":false":  &types.AttributeValueMemberBOOL{Value: false},
						":now":    &types.AttributeValueMemberS{Value: now},
						":reason": &types.AttributeValueMemberS{Value: strings.TrimSpace(reason)},
					},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(g.cfg.DebtsTable),
					Key:                 idKey(debt.ID),
					ConditionExpression: aws.String("#remaining_amount = :old_remaining"),
					UpdateExpression:    aws.String("SET #remaining_amount = :remaining, #status = :status, #updated_at = :now"),
					ExpressionAttributeNames: map[string]string{
						"#remaining_amount": "remaining_amount",
						"#status":           "status",
						"#updated_at":       "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":old_remaining": oldRemaining,
						":remaining":     newRemaining,
						":status":        &types.AttributeValueMemberS{Value: string(status)},
						":now":           &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return fmt.Errorf("%s: %w", op, ErrConcurrentUpdate)
		}
		return fmt.Errorf("%s: transact: %w", op, err)
	}

	g.log.Info().
		Int64("payment_id", paymentID).
		Int64("debt_id", debt.ID).
		Str("remaining", remaining.String()).
		Msg("payment soft-deleted")
	return nil
}

// SharePayment flags an active payment as shared and builds the share link
// for the provider's phone.
func (g *ReportDynamoGateway) SharePayment(ctx context.Context, paymentID int64) (entities.SharedPayment, error) {
	const op = "report_gateway.SharePayment"
	out, err := g.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(g.cfg.PaymentsTable),
		Key:                 idKey(paymentID),
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#deleted) OR #deleted = :false)"),
		UpdateExpression:    aws.String("SET #shared = :true, #shared_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#deleted":   "deleted",
			"#shared":    "shared",
			"#shared_at": "shared_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":now":   &types.AttributeValueMemberS{Value: formatTimestamp(g.now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if _, getErr := g.getPayment(ctx, paymentID); getErr != nil {
				return entities.SharedPayment{}, fmt.Errorf("%s: %w", op, getErr)
			}
			return entities.SharedPayment{}, fmt.Errorf("%s: %w", op, ErrPaymentDeleted)
		}
		return entities.SharedPayment{}, fmt.Errorf("%s: update: %w", op, err)
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SharedPayment{}, fmt.Errorf("%s: unmarshal: %w", op, err)
	}
	payment, err := g.parse.payment(it)
	if err != nil {
		return entities.SharedPayment{}, fmt.Errorf("%s: %w", op, err)
	}

	var provider entities.Provider
	if payment.SupplierID > 0 {
		if provider, err = g.getProvider(ctx, payment.SupplierID); err != nil && !errors.Is(err, ErrProviderNotFound) {
			return entities.SharedPayment{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return entities.SharedPayment{
		Payment:  payment,
		ShareURL: g.shareURL(provider, payment),
	}, nil
}

func (g *ReportDynamoGateway) DeleteDebt(_ context.Context, debtID int64) error {
	g.log.Warn().Int64("debt_id", debtID).Msg("debt deletion requested")
	return interfaces.ErrDebtDeletionNotImplemented
}

func (g *ReportDynamoGateway) shareURL(provider entities.Provider, p entities.Payment) string {
	var b strings.Builder
	b.WriteString("Payment confirmation")
	if provider.CompanyName != "" {
		b.WriteString("\nSupplier: " + provider.CompanyName)
	}
	b.WriteString("\nAmount: $" + p.Amount.StringFixed(2))
	if p.PaymentMethod != "" {
		b.WriteString("\nMethod: " + string(p.PaymentMethod))
	}
	if p.ConfirmationNumber != "" {
		b.WriteString("\nReference: " + p.ConfirmationNumber)
	}
	if p.PaymentDate != nil {
		b.WriteString("\nDate: " + reporting.FormatDay(*p.PaymentDate))
	}

	base := strings.TrimRight(g.cfg.ShareBaseURL, "/") + "/" + phoneDigits(provider.Phone)
	return base + "?text=" + url.QueryEscape(b.String())
}

func (g *ReportDynamoGateway) getProvider(ctx context.Context, id int64) (entities.Provider, error) {
	var it supplierItem
	found, err := g.getItem(ctx, g.cfg.SuppliersTable, id, &it)
	if err != nil {
		return entities.Provider{}, err
	}
	if !found {
		return entities.Provider{}, ErrProviderNotFound
	}
	return g.parse.provider(it)
}

func (g *ReportDynamoGateway) getDebt(ctx context.Context, id int64) (entities.Debt, error) {
	var it debtItem
	found, err := g.getItem(ctx, g.cfg.DebtsTable, id, &it)
	if err != nil {
		return entities.Debt{}, err
	}
	if !found {
		return entities.Debt{}, ErrDebtNotFound
	}
	return g.parse.debt(it)
}

func (g *ReportDynamoGateway) getPayment(ctx context.Context, id int64) (entities.Payment, error) {
	var it paymentItem
	found, err := g.getItem(ctx, g.cfg.PaymentsTable, id, &it)
	if err != nil {
		return entities.Payment{}, err
	}
	if !found {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return g.parse.payment(it)
}

func (g *ReportDynamoGateway) getItem(ctx context.Context, table string, id int64, out any) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	res, err := g.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, fmt.Errorf("get %s/%d: %w", table, id, err)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, &MalformedItemError{Table: table, ID: strconv.FormatInt(id, 10), Field: "*", Reason: err.Error()}
	}
	return true, nil
}

func (g *ReportDynamoGateway) debtsBySupplier(ctx context.Context, supplierID int64) ([]entities.Debt, error) {
	raw, err := g.query(ctx, g.cfg.DebtsTable, debtsBySupplierIndex, "supplier_id", supplierID)
	if err != nil {
		return nil, err
	}
	var items []debtItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, &MalformedItemError{Table: g.cfg.DebtsTable, ID: "*", Field: "*", Reason: err.Error()}
	}
	debts := make([]entities.Debt, 0, len(items))
	for _, it := range items {
		d, err := g.parse.debt(it)
		if err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	sort.SliceStable(debts, func(i, j int) bool {
		a, b := debts[i].CreatedAt, debts[j].CreatedAt
		if a != nil && b != nil && !a.Equal(*b) {
			return a.After(*b)
		}
		return debts[i].ID > debts[j].ID
	})
	return debts, nil
}

func (g *ReportDynamoGateway) paymentsByDebt(ctx context.Context, debtID int64) ([]entities.Payment, error) {
	return g.queryPayments(ctx, paymentsByDebtIndex, "debt_id", debtID)
}

func (g *ReportDynamoGateway) queryPayments(ctx context.Context, index, attr string, value int64) ([]entities.Payment, error) {
	raw, err := g.query(ctx, g.cfg.PaymentsTable, index, attr, value)
	if err != nil {
		return nil, err
	}
	var items []paymentItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, &MalformedItemError{Table: g.cfg.PaymentsTable, ID: "*", Field: "*", Reason: err.Error()}
	}
	payments := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		p, err := g.parse.payment(it)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (g *ReportDynamoGateway) query(ctx context.Context, table, index, attr string, value int64) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewQueryPaginator(g.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberN{Value: strconv.FormatInt(value, 10)},
		},
	})
	var out []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query %s/%s: %w", table, index, err)
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

// inRange keeps payments whose payment day lies in r. Payments without a
// date only survive an unbounded range.
func (g *ReportDynamoGateway) inRange(payments []entities.Payment, r entities.DateRange) []entities.Payment {
	if r.IsZero() {
		return payments
	}
	out := make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		if p.PaymentDate != nil && r.Contains(*p.PaymentDate, g.cfg.Location) {
			out = append(out, p)
		}
	}
	return out
}

func idKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}
