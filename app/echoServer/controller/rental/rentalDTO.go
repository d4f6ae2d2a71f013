package rental

import (
	"strconv"

	"boardcamp/model"
)

// listQuery parses ?customerId= and ?gameId=. Empty values mean no filter.
func listQuery(customerID, gameID string) (model.RentalFilter, bool) {
	var f model.RentalFilter
	if customerID != "" {
		id, err := strconv.ParseInt(customerID, 10, 64)
		if err != nil || id <= 0 {
			return f, false
		}
		f.CustomerID = &id
	}
	if gameID != "" {
		id, err := strconv.ParseInt(gameID, 10, 64)
		if err != nil || id <= 0 {
			return f, false
		}
		f.GameID = &id
	}
	return f, true
}
