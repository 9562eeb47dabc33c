package readmodel

import "time"

type AuthorizedUserRM struct {
	ID        int64
	Email     string
	Role      string
	CreatedAt time.Time
}
