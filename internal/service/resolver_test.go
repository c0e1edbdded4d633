package service

import (
	"context"
	"testing"

	"pulse/internal/mocks"
	"pulse/internal/model"
	"pulse/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func trackedSite() *model.Site {
	return &model.Site{
		ID:        42,
		Domain:    "example.com",
		AccountID: 7,
		Account:   model.Account{ID: 7, Email: "owner@example.com", CanTrack: true},
		DomainKey: "k-123",
	}
}

func TestNewResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
	mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

	r := NewResolver(mockMySQL, mockRedis, true)

	assert.NotNil(t, r)
	assert.Equal(t, mockMySQL, r.mysqlRepo)
	assert.Equal(t, mockRedis, r.redisRepo)
	assert.True(t, r.keyRestriction)
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name           string
		domain         string
		domainKey      string
		keyRestriction bool
		setupMock      func(*gomock.Controller) (MySQLRepositoryInterface, RedisRepositoryInterface)
		wantErr        error
	}{
		{
			name:   "cache hit",
			domain: "example.com",
			setupMock: func(ctrl *gomock.Controller) (MySQLRepositoryInterface, RedisRepositoryInterface) {
				mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
				mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

				mockRedis.EXPECT().GetCachedSite(gomock.Any(), "example.com").Return(trackedSite(), nil)

				return mockMySQL, mockRedis
			},
		},
		{
			name:   "cache miss falls back to database and fills cache",
			domain: "example.com",
			setupMock: func(ctrl *gomock.Controller) (MySQLRepositoryInterface, RedisRepositoryInterface) {
				mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
				mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

				site := trackedSite()
				mockRedis.EXPECT().GetCachedSite(gomock.Any(), "example.com").Return(nil, assert.AnError)
				mockMySQL.EXPECT().GetSiteByDomain(gomock.Any(), "example.com").Return(site, nil)
				mockRedis.EXPECT().CacheSite(gomock.Any(), site, repository.SiteCacheTTL).Return(nil)

				return mockMySQL, mockRedis
			},
		},
		{
			name:   "cache fill failure is non-fatal",
			domain: "example.com",
			setupMock: func(ctrl *gomock.Controller) (MySQLRepositoryInterface, RedisRepositoryInterface) {
				mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
				mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

				site := trackedSite()
				mockRedis.EXPECT().GetCachedSite(gomock.Any(), "example.com").Return(nil, assert.AnError)
				mockMySQL.EXPECT().GetSiteByDomain(gomock.Any(), "example.com").Return(site, nil)
				mockRedis.EXPECT().CacheSite(gomock.Any(), site, repository.SiteCacheTTL).Return(assert.AnError)

				return mockMySQL, mockRedis
			},
		},
		{
			name:   "domain is normalized before lookup",
			domain: "https://WWW.Example.com",
			setupMock: func(ctrl *gomock.Controller) (MySQLRepositoryInterface, RedisRepositoryInterface) {
				mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
				mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

				mockRedis.EXPECT().GetCachedSite(gomock.Any(), "example.com").Return(trackedSite(), nil)

				return mockMySQL, mockRedis
			},
		},
		{
			name:   "unknown domain",
			domain: "nosuch.test",
			setupMock: func(ctrl *gomock.Controller) (MySQLRepositoryInterface, RedisRepositoryInterface) {
				mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
				mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

				mockRedis.EXPECT().GetCachedSite(gomock.Any(), "nosuch.test").Return(nil, assert.AnError)
				mockMySQL.EXPECT().GetSiteByDomain(gomock.Any(), "nosuch.test").Return(nil, assert.AnError)

				return mockMySQL, mockRedis
			},
			wantErr: ErrSiteNotFound,
		},
		{
			name:   "tracking disabled for account",
			domain: "example.com",
			setupMock: func(ctrl *gomock.Controller) (MySQLRepositoryInterface, RedisRepositoryInterface) {
				mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
				mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

				site := trackedSite()
				site.Account.CanTrack = false
				mockRedis.EXPECT().GetCachedSite(gomock.Any(), "example.com").Return(site, nil)

				return mockMySQL, mockRedis
			},
			wantErr: ErrTrackingDisabled,
		},
		{
			name:           "key restriction with valid key",
			domain:         "example.com",
			domainKey:      "k-123",
			keyRestriction: true,
			setupMock: func(ctrl *gomock.Controller) (MySQLRepositoryInterface, RedisRepositoryInterface) {
				mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
				mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

				mockRedis.EXPECT().GetCachedSite(gomock.Any(), "example.com").Return(trackedSite(), nil)

				return mockMySQL, mockRedis
			},
		},
		{
			name:           "key restriction with missing key",
			domain:         "example.com",
			domainKey:      "",
			keyRestriction: true,
			setupMock: func(ctrl *gomock.Controller) (MySQLRepositoryInterface, RedisRepositoryInterface) {
				mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
				mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

				mockRedis.EXPECT().GetCachedSite(gomock.Any(), "example.com").Return(trackedSite(), nil)

				return mockMySQL, mockRedis
			},
			wantErr: ErrInvalidDomainKey,
		},
		{
			name:           "key restriction with wrong key",
			domain:         "example.com",
			domainKey:      "k-999",
			keyRestriction: true,
			setupMock: func(ctrl *gomock.Controller) (MySQLRepositoryInterface, RedisRepositoryInterface) {
				mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
				mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

				mockRedis.EXPECT().GetCachedSite(gomock.Any(), "example.com").Return(trackedSite(), nil)

				return mockMySQL, mockRedis
			},
			wantErr: ErrInvalidDomainKey,
		},
		{
			name:      "key ignored when restriction disabled",
			domain:    "example.com",
			domainKey: "anything",
			setupMock: func(ctrl *gomock.Controller) (MySQLRepositoryInterface, RedisRepositoryInterface) {
				mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
				mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

				mockRedis.EXPECT().GetCachedSite(gomock.Any(), "example.com").Return(trackedSite(), nil)

				return mockMySQL, mockRedis
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMySQL, mockRedis := tt.setupMock(ctrl)
			r := NewResolver(mockMySQL, mockRedis, tt.keyRestriction)

			site, err := r.Resolve(context.Background(), tt.domain, tt.domainKey)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, site)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, site)
				assert.Equal(t, "example.com", site.Domain)
			}
		})
	}
}
