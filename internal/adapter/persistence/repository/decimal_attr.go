package repository

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// decimalAttr stores money as a DynamoDB number. String attributes are
// accepted on read for items written by older tooling.
type decimalAttr struct {
	decimal.Decimal
}

var (
	_ attributevalue.Marshaler   = decimalAttr{}
	_ attributevalue.Unmarshaler = (*decimalAttr)(nil)
)

func newDecimalAttr(d decimal.Decimal) decimalAttr {
	return decimalAttr{Decimal: d}
}

func newDecimalAttrPtr(d *decimal.Decimal) *decimalAttr {
	if d == nil {
		return nil
	}
	a := newDecimalAttr(*d)
	return &a
}

func (a *decimalAttr) ptr() *decimal.Decimal {
	if a == nil {
		return nil
	}
	d := a.Decimal
	return &d
}

func (a decimalAttr) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: a.Decimal.String()}, nil
}

func (a *decimalAttr) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		a.Decimal = decimal.Zero
		return nil
	default:
		return fmt.Errorf("decimal attribute: unsupported type %T", av)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("decimal attribute %q: %w", raw, err)
	}
	a.Decimal = d
	return nil
}
