package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"marketplace-api/internal/assets"
	"marketplace-api/internal/cache"
	"marketplace-api/internal/database"
	"marketplace-api/internal/logger"
	"marketplace-api/internal/model"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// AssetStore is the part of assets.Store the catalog services use.
type AssetStore interface {
	Save(ctx context.Context, raw []byte, nameHint string) (string, error)
	Remove(ctx context.Context, name string) error
}

// Catalog bundles the collaborators shared by the food and rental services.
type Catalog struct {
	DB       database.DB
	Assets   AssetStore
	Audit    *Auditor
	Cache    cache.Cache
	CacheTTL time.Duration
}

// MaxPrice is the exclusive upper bound of a NUMERIC(10,2) price column.
const MaxPrice = 1e8

// checkPrice 拒絕負數、NaN、Inf 與超出欄位範圍的價格
func checkPrice(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p >= MaxPrice {
		return NewError(ErrValidation, "Price must be a number.")
	}
	if p < 0 {
		return NewError(ErrValidation, "Price must not be negative.")
	}
	return nil
}

// pipeline 封裝寫入流程共用的步驟：存圖、清除舊圖、清快取、寫稽核
type pipeline struct {
	Catalog
	itemType model.ItemType
	listKey  string
}

func newPipeline(c Catalog, itemType model.ItemType) pipeline {
	if c.Cache == nil {
		c.Cache = cache.NopCache{}
	}
	return pipeline{
		Catalog:  c,
		itemType: itemType,
		listKey:  "catalog:" + string(itemType) + ":list",
	}
}

func (p *pipeline) storeImage(ctx context.Context, image []byte, nameHint string) (string, error) {
	name, err := p.Assets.Save(ctx, image, nameHint)
	if errors.Is(err, assets.ErrUnsupportedInput) {
		return "", NewError(ErrUnsupportedInput, "Unsupported image format.")
	}
	if err != nil {
		return "", fmt.Errorf("store %s image: %w", p.itemType, err)
	}
	return name, nil
}

// discard removes an asset no row references any more. A failure leaves an
// orphaned file behind and is only logged.
func (p *pipeline) discard(ctx context.Context, name string) {
	if name == "" {
		return
	}
	if err := p.Assets.Remove(ctx, name); err != nil {
		logger.Warningf("remove %s asset %q: %v", p.itemType, name, err)
	}
}

// committed runs after the row mutation succeeded: the list cache is dropped
// and the audit entry written. Only the audit write can fail the request.
// The key is dropped again after the audit so a List that loaded before the
// mutation and stored its result in between does not linger until the TTL.
func (p *pipeline) committed(ctx context.Context, action model.Action, description string, id int) error {
	p.invalidate(ctx)
	err := p.Audit.Append(ctx, action, description, id, p.itemType)
	p.invalidate(ctx)
	return err
}

func (p *pipeline) invalidate(ctx context.Context) {
	if err := p.Cache.Del(ctx, p.listKey).Err(); err != nil {
		logger.Warningf("invalidate %s: %v", p.listKey, err)
	}
}

// listCached serves key from the cache and falls back to load on a miss or any
// cache failure. The cache never turns a successful load into an error.
func listCached[T any](ctx context.Context, p *pipeline, load func(context.Context) (T, error)) (T, error) {
	var out T
	raw, err := p.Cache.Get(ctx, p.listKey).Bytes()
	switch {
	case err == nil:
		if jerr := json.Unmarshal(raw, &out); jerr == nil {
			return out, nil
		}
		logger.Warningf("cache %s: corrupt entry", p.listKey)
	case !errors.Is(err, redis.Nil):
		logger.Warningf("cache get %s: %v", p.listKey, err)
	}

	out, err = load(ctx)
	if err != nil {
		return out, err
	}
	if data, jerr := json.Marshal(out); jerr == nil {
		if err := p.Cache.Set(ctx, p.listKey, data, p.CacheTTL).Err(); err != nil {
			logger.Warningf("cache set %s: %v", p.listKey, err)
		}
	}
	return out, nil
}
