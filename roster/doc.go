// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster is the client for the external identity and faction roster service.

	client := roster.NewClient("https://api.torn.com", 0)
	name, err := client.Authenticate(ctx, apiKey)
	members, err := client.FetchRoster(ctx, apiKey)

Both calls send the credential as the "key" query parameter and make exactly
one attempt. Errors are classified with errors.Is:

  - ErrCredential: empty credential, or a response carrying an "error" field
  - ErrNetwork: transport failure, non-2xx status, or an unusable body

The credential is removed from transport error text before wrapping.
*/
package roster
