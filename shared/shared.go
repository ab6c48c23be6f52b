package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"lexdesk/shared/cache"
	"lexdesk/shared/constant"
	"lexdesk/shared/dto"
	"lexdesk/shared/timezone"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a domain prefix and identifier into a cache key.
func BuildCacheKey(prefix, id string) string {
	if id == "" {
		return prefix
	}

	return fmt.Sprintf("%s:%s", prefix, id)
}

// BuildCacheKeyWithQuery builds a cache key that varies with pagination and sorting,
// so each page of a listing is cached independently.
func BuildCacheKeyWithQuery(prefix, id string, params dto.QueryParams) string {
	parts := []string{BuildCacheKey(prefix, id)}

	parts = append(parts,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
	)

	if params.SortBy != "" {
		parts = append(parts, params.SortBy)
	}

	if params.SortDir != "" {
		parts = append(parts, params.SortDir)
	}

	return strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefixes. Errors are
// logged and swallowed since stale cache entries expire on their own TTL anyway.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}
