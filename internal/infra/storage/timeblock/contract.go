package timeblock

import (
	"github.com/voyagecrest/charter-booking-service/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
