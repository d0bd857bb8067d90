// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

/*
Package session resolves opaque bearer tokens to user identifiers.

Sessions are issued by the external account service and shared through
Redis; this side only ever reads them. A token maps to the user ID under
a prefixed key with a TTL the issuer controls, so expiry needs no logic
here — the key simply vanishes.
*/
package session

import "context"

// Repository defines the read-only session lookup contract.
type Repository interface {

	/*
		Resolve maps a bearer token to the user identifier it belongs to.

		Parameters:
		  - context: context.Context
		  - token: string (opaque session token from the Authorization header)

		Returns:
		  - string: The user identifier
		  - error: dberr.ErrNotFound for unknown or expired tokens,
		    otherwise store failures
	*/
	Resolve(context context.Context, token string) (string, error)
}
