package user

import (
	"context"
	"encoding/json"
	"time"

	"am-hris/internal/domain"
	usererrors "am-hris/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ManagerOptionsKeyPrefix = "users:managers:"
	managerOptionsTTL       = time.Hour
)

func GetManagerOptionsKey(organizationID uuid.UUID) string {
	return ManagerOptionsKeyPrefix + organizationID.String()
}

func (s *service) invalidateManagerOptions(ctx context.Context, organizationID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetManagerOptionsKey(organizationID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate manager options cache",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func (s *service) GetManagers(ctx context.Context, caller domain.Caller) ([]ManagerOption, error) {
	if !caller.IsAdmin() {
		return nil, usererrors.ErrForbidden
	}
	cacheKey := GetManagerOptionsKey(caller.OrganizationID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []ManagerOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		users, err := s.repo.FindManagers(ctx, caller.OrganizationID)
		if err != nil {
			return nil, err
		}

		resp := make([]ManagerOption, 0, len(users))
		for _, u := range users {
			resp = append(resp, ManagerOption{ID: u.ID.String(), Name: u.Name, Email: u.Email, Role: string(u.Role)})
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, managerOptionsTTL).Err(); err != nil {
					s.logger.Warn("cache manager options failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get managers failed", zap.Error(err))
		return nil, err
	}

	return v.([]ManagerOption), nil
}
