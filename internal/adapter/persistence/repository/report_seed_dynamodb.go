package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"supplier_report/internal/domain/entities"
)

// SeedData is a fixture set loaded by `reportctl seed`.
type SeedData struct {
	Providers []entities.Provider `json:"providers"`
	Debts     []entities.Debt     `json:"debts"`
	Payments  []entities.Payment  `json:"payments"`
}

type SeedResult struct {
	Written int
	Skipped int
}

// Seed writes the fixtures, skipping ids that already exist.
func (g *ReportDynamoGateway) Seed(ctx context.Context, data SeedData) (SeedResult, error) {
	const op = "report_gateway.Seed"
	var res SeedResult
	put := func(table string, id int64, item any) error {
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return fmt.Errorf("%s: marshal %s/%d: %w", op, table, id, err)
		}
		_, err = g.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(table),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				res.Skipped++
				return nil
			}
			return fmt.Errorf("%s: put %s/%d: %w", op, table, id, err)
		}
		res.Written++
		return nil
	}

	for _, p := range data.Providers {
		if _, err := g.parse.provider(toSupplierItem(p)); err != nil {
			return res, fmt.Errorf("%s: %w", op, err)
		}
		if err := put(g.cfg.SuppliersTable, p.ID, toSupplierItem(p)); err != nil {
			return res, err
		}
	}
	for _, d := range data.Debts {
		if _, err := g.parse.debt(toDebtItem(d)); err != nil {
			return res, fmt.Errorf("%s: %w", op, err)
		}
		if err := put(g.cfg.DebtsTable, d.ID, toDebtItem(d)); err != nil {
			return res, err
		}
	}
	for _, p := range data.Payments {
		if _, err := g.parse.payment(toPaymentItem(p)); err != nil {
			return res, fmt.Errorf("%s: %w", op, err)
		}
		if err := put(g.cfg.PaymentsTable, p.ID, toPaymentItem(p)); err != nil {
			return res, err
		}
	}
	g.log.Info().Int("written", res.Written).Int("skipped", res.Skipped).Msg("seed finished")
	return res, nil
}
