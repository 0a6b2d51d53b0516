package sqlite

import "github.com/osse101/TornBot_Go/internal/domain"

const insertAttack = `
INSERT INTO faction_attacks_seen (
    attack_id, started, ended, attacker_id, attacker_name, defender_id, defender_name,
    result, respect_gain, respect_loss, mugged, tags, raw
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (attack_id) DO NOTHING`

const mergeAttack = `
UPDATE faction_attacks_seen SET
    ended         = COALESCE(?, ended),
    attacker_name = COALESCE(?, attacker_name),
    defender_id   = COALESCE(?, defender_id),
    defender_name = COALESCE(?, defender_name),
    result        = COALESCE(?, result),
    raw           = COALESCE(?, raw)
WHERE attack_id = ?`

const getAttack = `
SELECT attack_id, started, ended, attacker_id, attacker_name, defender_id, defender_name,
       result, respect_gain, respect_loss, mugged, tags, raw
FROM faction_attacks_seen
WHERE attack_id = ?`

const bumpActorTotals = `
INSERT INTO faction_leaderboard_totals (
    attacker_id, attacks, mugs, hosps, respect_gain, respect_loss, mugged, best_mug
) VALUES (?1, 1, ?2, ?3, ?4, ?5, ?6, ?6)
ON CONFLICT (attacker_id) DO UPDATE SET
    attacks      = attacks + 1,
    mugs         = mugs + excluded.mugs,
    hosps        = hosps + excluded.hosps,
    respect_gain = respect_gain + excluded.respect_gain,
    respect_loss = respect_loss + excluded.respect_loss,
    mugged       = mugged + excluded.mugged,
    best_mug     = MAX(best_mug, excluded.best_mug),
    updated_at   = strftime('%s', 'now')`

const getActorTotals = `
SELECT attacker_id, attacks, mugs, hosps, respect_gain, respect_loss, mugged, best_mug
FROM faction_leaderboard_totals
WHERE attacker_id = ?`

// topByQueries are static per column so no identifier is ever interpolated
var topByQueries = map[domain.LeaderboardColumn]string{
	domain.ColumnAttacks: `SELECT attacker_id, CAST(attacks AS REAL) FROM faction_leaderboard_totals
        ORDER BY attacks DESC, attacker_id ASC LIMIT 1`,
	domain.ColumnMugs: `SELECT attacker_id, CAST(mugs AS REAL) FROM faction_leaderboard_totals
        ORDER BY mugs DESC, attacker_id ASC LIMIT 1`,
	domain.ColumnHospitalizations: `SELECT attacker_id, CAST(hosps AS REAL) FROM faction_leaderboard_totals
        ORDER BY hosps DESC, attacker_id ASC LIMIT 1`,
	domain.ColumnRespectGain: `SELECT attacker_id, respect_gain FROM faction_leaderboard_totals
        ORDER BY respect_gain DESC, attacker_id ASC LIMIT 1`,
	domain.ColumnBestMug: `SELECT attacker_id, best_mug FROM faction_leaderboard_totals
        ORDER BY best_mug DESC, attacker_id ASC LIMIT 1`,
}

const sumMugged = `SELECT CAST(COALESCE(SUM(mugged), 0) AS REAL) FROM faction_leaderboard_totals`

const getMeta = `SELECT value FROM faction_leaderboard_meta WHERE key = ?`

const setMeta = `
INSERT INTO faction_leaderboard_meta (key, value) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value`

// Non-integer stored values are always replaced.
const advanceMetaIfGreater = `
INSERT INTO faction_leaderboard_meta (key, value) VALUES (?1, ?2)
ON CONFLICT (key) DO UPDATE SET value = excluded.value
WHERE CAST(CAST(value AS INTEGER) AS TEXT) <> value
   OR CAST(value AS INTEGER) < CAST(excluded.value AS INTEGER)`

const lowerMetaIfLess = `
INSERT INTO faction_leaderboard_meta (key, value) VALUES (?1, ?2)
ON CONFLICT (key) DO UPDATE SET value = excluded.value
WHERE CAST(CAST(value AS INTEGER) AS TEXT) <> value
   OR CAST(value AS INTEGER) > CAST(excluded.value AS INTEGER)`

const getSecret = `SELECT ciphertext FROM secrets WHERE owner = ?`

const putSecret = `
INSERT INTO secrets (owner, ciphertext) VALUES (?, ?)
ON CONFLICT (owner) DO UPDATE SET ciphertext = excluded.ciphertext, updated_at = strftime('%s', 'now')`

const deleteSecret = `DELETE FROM secrets WHERE owner = ?`
