package config

import (
	"github.com/dfscoin/dfsd/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.CNFG)
