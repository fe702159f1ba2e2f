package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	localCache "github.com/fwwkol/openalgo/cache"
	"github.com/fwwkol/openalgo/customerrors"
	"github.com/fwwkol/openalgo/database"
	"github.com/fwwkol/openalgo/model"

	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SymbolRepository resolves platform (symbol, exchange) pairs to the
// vendor identifiers recorded in the symbol master.
type SymbolRepository interface {
	GetToken(ctx context.Context, symbol, exchange string) (string, error)
	GetBrExchange(ctx context.Context, symbol, exchange string) (string, error)
	FindSymbol(ctx context.Context, symbol, exchange string) (*model.SymToken, error)
}

type MongoSymbolRepository struct {
	collection *mongo.Collection
}

func NewSymbolRepository(db *mongo.Database) *MongoSymbolRepository {
	return &MongoSymbolRepository{
		collection: db.Collection("symtoken"),
	}
}

func (r *MongoSymbolRepository) GetToken(ctx context.Context, symbol, exchange string) (string, error) {
	record, err := r.FindSymbol(ctx, symbol, exchange)
	if err != nil {
		return "", err
	}
	return record.Token, nil
}

func (r *MongoSymbolRepository) GetBrExchange(ctx context.Context, symbol, exchange string) (string, error) {
	record, err := r.FindSymbol(ctx, symbol, exchange)
	if err != nil {
		return "", err
	}
	return record.BrExchange, nil
}

// FindSymbol checks the in-process cache, then redis, then mongo.
// Misses return customerrors.ErrSymbolNotFound.
func (r *MongoSymbolRepository) FindSymbol(ctx context.Context, symbol, exchange string) (*model.SymToken, error) {
	cacheKey := "symtoken_" + exchange + "_" + symbol

	if cached, found := localCache.SymbolCache.Get(cacheKey); found {
		record := cached.(model.SymToken)
		return &record, nil
	}

	var record model.SymToken
	if ok, _ := database.RedisHelper.GetAsStruct(cacheKey, &record); ok {
		localCache.SymbolCache.Set(cacheKey, record, cache.DefaultExpiration)
		return &record, nil
	}

	filter := bson.M{"symbol": symbol, "exchange": exchange}
	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, customerrors.ErrSymbolNotFound
		}
		return nil, fmt.Errorf("symbol master lookup failed: %w", err)
	}

	localCache.SymbolCache.Set(cacheKey, record, cache.DefaultExpiration)
	database.RedisHelper.Set(cacheKey, record, 1*time.Hour)

	return &record, nil
}
