package mysql

const restaurantCols = "id, name, type, lat, lon, contact, available, wait_time"

const listAvailableSQL = `
SELECT ` + restaurantCols + `
FROM restaurants
WHERE available = 1
ORDER BY id
`

const listAllSQL = `
SELECT ` + restaurantCols + `
FROM restaurants
ORDER BY id
`

const getRestaurantSQL = `
SELECT ` + restaurantCols + `
FROM restaurants
WHERE id = ?
`

// LOWER() on both sides keeps the match case-insensitive whatever the column collation.
const findByNameSQL = `
SELECT ` + restaurantCols + `
FROM restaurants
WHERE LOWER(name) = LOWER(?)
ORDER BY id
LIMIT 1
`

const insertRestaurantSQL = `
INSERT INTO restaurants
  (name, type, lat, lon, contact, available, wait_time)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
`

// name is UNIQUE; existing rows are left untouched.
const insertIgnoreRestaurantSQL = `
INSERT IGNORE INTO restaurants
  (name, type, lat, lon, contact, available, wait_time)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
`

const updateWaitTimeSQL = `UPDATE restaurants SET wait_time = ? WHERE id = ?`

const updateTypeSQL = `UPDATE restaurants SET type = ? WHERE id = ?`

// -----------------------------------------------------------------------------
// REPORTS (append-only)
// -----------------------------------------------------------------------------

const loadReportsSQL = `
SELECT id, restaurant_id, wait_minutes, created_at
FROM reports
ORDER BY id
`

const insertReportSQL = `
INSERT INTO reports (id, restaurant_id, wait_minutes, created_at)
VALUES (?, ?, ?, ?)
`

const insertReportsPrefix = "INSERT INTO reports (id, restaurant_id, wait_minutes, created_at)\nVALUES "

// Re-saving an existing id is a no-op; reports are never rewritten.
const insertReportsOnDup = " ON DUPLICATE KEY UPDATE id = id"
