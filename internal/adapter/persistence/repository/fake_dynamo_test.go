package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

// fakeDynamo keeps tables in memory and understands the handful of
// expressions the gateway sends.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[int64]item

	queryErr    error
	beforeWrite func(f *fakeDynamo)
	queries     int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[int64]item{}}
}

func (f *fakeDynamo) put(table string, v any) {
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		panic(err)
	}
	f.putRaw(table, av)
}

func (f *fakeDynamo) putRaw(table string, av item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tables[table] == nil {
		f.tables[table] = map[int64]item{}
	}
	f.tables[table][numberAttr(av["id"])] = av
}

func (f *fakeDynamo) get(table string, id int64) item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tables[table][id]
}

func numberAttr(av types.AttributeValue) int64 {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	v, _ := strconv.ParseInt(n.Value, 10, 64)
	return v
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.get(*in.TableName, numberAttr(in.Key["id"]))}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	attr := in.ExpressionAttributeNames["#k"]
	want := numberAttr(in.ExpressionAttributeValues[":v"])
	var out []item
	for _, it := range f.tables[*in.TableName] {
		if numberAttr(it[attr]) == want {
			out = append(out, it)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []item
	for _, it := range f.tables[*in.TableName] {
		out = append(out, it)
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := numberAttr(in.Item["id"])
	if in.ConditionExpression != nil && f.get(*in.TableName, id) != nil {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.putRaw(*in.TableName, in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.check(*in.TableName, in.Key, in.ConditionExpression, in.ExpressionAttributeNames, in.ExpressionAttributeValues)
	if !ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	applySet(it, *in.UpdateExpression, in.ExpressionAttributeNames, in.ExpressionAttributeValues)
	return &dynamodb.UpdateItemOutput{Attributes: it}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	if f.beforeWrite != nil {
		f.beforeWrite(f)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	targets := make([]item, len(in.TransactItems))
	for i, ti := range in.TransactItems {
		u := ti.Update
		if u == nil {
			return nil, errors.New("fake: only Update is supported")
		}
		it, ok := f.check(*u.TableName, u.Key, u.ConditionExpression, u.ExpressionAttributeNames, u.ExpressionAttributeValues)
		if !ok {
			return nil, &types.TransactionCanceledException{}
		}
		targets[i] = it
	}
	for i, ti := range in.TransactItems {
		u := ti.Update
		applySet(targets[i], *u.UpdateExpression, u.ExpressionAttributeNames, u.ExpressionAttributeValues)
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

// check evaluates the condition shapes the gateway uses. Callers hold f.mu.
func (f *fakeDynamo) check(table string, key item, cond *string, names map[string]string, values map[string]types.AttributeValue) (item, bool) {
	it := f.tables[table][numberAttr(key["id"])]
	if cond == nil {
		return it, it != nil
	}
	c := *cond
	if strings.Contains(c, "attribute_exists(#id)") && it == nil {
		return nil, false
	}
	if it == nil {
		return nil, false
	}
	if strings.Contains(c, "#deleted = :false") {
		if b, ok := it[names["#deleted"]].(*types.AttributeValueMemberBOOL); ok && b.Value {
			return nil, false
		}
	}
	if strings.Contains(c, "#remaining_amount = :old_remaining") {
		cur, _ := it[names["#remaining_amount"]].(*types.AttributeValueMemberN)
		old, _ := values[":old_remaining"].(*types.AttributeValueMemberN)
		if cur == nil || old == nil || !sameNumber(cur.Value, old.Value) {
			return nil, false
		}
	}
	return it, true
}

func sameNumber(a, b string) bool {
	x, errA := strconv.ParseFloat(a, 64)
	y, errB := strconv.ParseFloat(b, 64)
	return errA == nil && errB == nil && x == y
}

func applySet(it item, expr string, names map[string]string, values map[string]types.AttributeValue) {
	body := strings.TrimPrefix(strings.TrimSpace(expr), "SET ")
	for _, assign := range strings.Split(body, ",") {
		parts := strings.SplitN(assign, "=", 2)
		name := names[strings.TrimSpace(parts[0])]
		it[name] = values[strings.TrimSpace(parts[1])]
	}
}
