package utils

import "fmt"

type Probe struct {
	User  string
	Share string
}

// NewProbesClusterBomb pairs every user with every share. All shares of a
// user come before the next user.
func NewProbesClusterBomb(users []string, shares []string) (out []Probe) {
	for _, u := range users {
		for _, s := range shares {
			out = append(out, Probe{User: u, Share: s})
		}
	}
	return
}

func (p *Probe) String() string {
	return fmt.Sprintf("%s@%s", p.User, p.Share)
}
