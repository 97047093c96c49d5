// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a validated Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Resolution Order

Each setting is taken from the first source that provides it:

 1. CLI flag
 2. Process environment
 3. The --env-file dotenv file (default .env, missing is fine)
 4. Built-in default

# CLI Flags

	-p, --port             Server port (PORT)
	-r, --roster-url       Roster service URL (ROSTER_BASE_URL)
	--roster-timeout       Roster call timeout, 0 = none (ROSTER_TIMEOUT)
	-a, --admins           Admin display names (GRID_ADMINS)
	--duration             Default days shown (GRID_DEFAULT_DURATION)
	--max-duration         Longest admin range, <= 366 (GRID_MAX_DURATION)
	--invalid-duration     silent or reject (GRID_INVALID_DURATION)
	--session-ttl          Idle session lifetime (SESSION_TTL)
	--max-sessions         Session store size (MAX_SESSIONS)
	--token-salt           Fingerprint salt (SESSION_TOKEN_SALT)
	--log-level            debug, info, warn, error (LOG_LEVEL)
	--log-file             Rotating log file (LOG_FILE)

# Validation

Config fields carry validator tags. ParseFlags fails when:

  - SESSION_TOKEN_SALT is missing
  - the roster URL is not a URL
  - the default duration is below one day or above the maximum
  - the maximum duration is outside 1..366
  - the invalid-duration policy or log level is not recognised
*/
package cliparse
