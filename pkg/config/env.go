package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// 环境变量名
const (
	EnvVerbose    = "DEEPDIVE_VERBOSE"
	EnvGodMode    = "DEEPDIVE_GOD_MODE"
	EnvConfigPath = "DEEPDIVE_CONFIG"
	EnvSeed       = "DEEPDIVE_SEED"
)

// RuntimeEnv 入口程序读取的运行期开关
type RuntimeEnv struct {
	Verbose    bool
	GodMode    bool
	ConfigPath string // 为空时使用内嵌配置
	Seed       int64  // 0 表示按时间取种
}

// LoadEnv 加载 .env(不存在时忽略)并读取运行期开关
// 已存在的进程环境变量优先于 .env 中的值
func LoadEnv(files ...string) (RuntimeEnv, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return RuntimeEnv{}, err
	}

	env := RuntimeEnv{
		Verbose:    envBool(EnvVerbose),
		GodMode:    envBool(EnvGodMode),
		ConfigPath: os.Getenv(EnvConfigPath),
	}
	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("[Config] Ignoring invalid %s=%q: %v", EnvSeed, raw, err)
		} else {
			env.Seed = seed
		}
	}
	return env, nil
}

// LoadGameplayForEnv 按运行期开关选择配置来源
func LoadGameplayForEnv(env RuntimeEnv) (*GameplayConfig, error) {
	if env.ConfigPath != "" {
		return LoadGameplayConfig(env.ConfigPath)
	}
	return LoadEmbeddedGameplayConfig()
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
