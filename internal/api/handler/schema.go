package handler

import "github.com/cleancity/waste-collection-api/internal/core/ports"

// Success envelopes. Every 2xx response is one of these shapes:
// {success:true, token, user} for auth, {success:true, count?, data} for
// everything else.

type authEnvelope struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	User    ports.Principal `json:"user"`
}

type dataEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type listEnvelope struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

func newAuthEnvelope(cred *ports.Credential) authEnvelope {
	return authEnvelope{Success: true, Token: cred.Token, User: cred.Principal}
}

func newDataEnvelope(data any) dataEnvelope {
	return dataEnvelope{Success: true, Data: data}
}

func newListEnvelope(count int, data any) listEnvelope {
	return listEnvelope{Success: true, Count: count, Data: data}
}
