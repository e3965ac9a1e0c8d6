package repository

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/cleanup"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/redis/go-redis/v9"
)

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

// RedisStateRepo stores each record as a plain string key.
type RedisStateRepo struct {
	client *redis.Client
}

func NewRedisStateRepo(cfg *RedisCfg) *RedisStateRepo {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error while pinging redis for stateRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &RedisStateRepo{client: client}
}

func NewRedisStateRepoWithClient(client *redis.Client) *RedisStateRepo {
	return &RedisStateRepo{client: client}
}

func (rr *RedisStateRepo) Load(ctx context.Context) (*entity.State, error) {
	vals, err := rr.client.MGet(ctx, ProfileRecord, DataRecord).Result()
	if err != nil {
		return nil, errors.New("loading state error: " + err.Error())
	}
	raw := make([][]byte, 0, 2)
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			return nil, errorvalues.ErrNoState
		}
		raw = append(raw, []byte(s))
	}
	return decodeState(raw[0], raw[1])
}

func (rr *RedisStateRepo) Save(ctx context.Context, profile *entity.Profile, data *entity.AppData) error {
	p, d, err := encodeState(profile, data)
	if err != nil {
		return err
	}
	_, err = rr.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, ProfileRecord, p, 0)
		pipe.Set(ctx, DataRecord, d, 0)
		return nil
	})
	if err != nil {
		return errors.New("saving state error: " + err.Error())
	}
	return nil
}

func (rr *RedisStateRepo) Reset(ctx context.Context) error {
	if err := rr.client.Del(ctx, ProfileRecord, DataRecord).Err(); err != nil {
		return errors.New("resetting state error: " + err.Error())
	}
	return nil
}

var _ StateRepositoryI = (*RedisStateRepo)(nil)
