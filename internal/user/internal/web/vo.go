package web

import "github.com/mindblowndbs/mindblown/internal/user/internal/domain"

type EditReq struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Profile struct {
	Id       int64  `json:"id"`
	SN       string `json:"sn"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:       u.Id,
		SN:       u.SN,
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
	}
}
