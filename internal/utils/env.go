package utils

import (
  "os"
  "strconv"
  "github.com/rumbo-app/orientation-backend/internal/logger"
)

// GetEnv reads key from the environment, falling back to defaultVal when the
// variable is unset. Lookups are logged at debug level so a misconfigured
// deployment shows which defaults it is running on.
func GetEnv(key, defaultVal string, log *logger.Logger) string {
  if log != nil {
    log = log.With("env_var", key)
  }
  val, ok := os.LookupEnv(key)
  if !ok {
    if log != nil {
      log.Debug("Env var unset, using default", "default", defaultVal)
    }
    return defaultVal
  }
  if log != nil {
    log.Debug("Env var set", "value", val)
  }
  return val
}

// GetEnvAsInt is GetEnv for integer variables. A value that does not parse as
// an int falls back to defaultVal instead of failing startup.
func GetEnvAsInt(key string, defaultVal int, log *logger.Logger) int {
  if log != nil {
    log = log.With("env_var", key)
  }
  valStr, ok := os.LookupEnv(key)
  if !ok {
    if log != nil {
      log.Debug("Env var unset, using default", "default", defaultVal)
    }
    return defaultVal
  }
  i, err := strconv.Atoi(valStr)
  if err != nil {
    if log != nil {
      log.Debug("Env var is not an integer, using default", "raw", valStr, "default", defaultVal, "error", err)
    }
    return defaultVal
  }
  if log != nil {
    log.Debug("Env var set", "value", i)
  }
  return i
}
