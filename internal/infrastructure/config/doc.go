// Package config loads and validates Estate API configuration.
//
// Configuration comes from three layers, later layers winning:
//
//  1. Hardcoded defaults
//  2. An optional YAML file (ESTATEAPI_CONFIG, default configs/config.yaml)
//  3. Environment variables
//
// The PORT and MONGO_DB_URI environment variables keep the names the service
// has always used, so existing deployment environments carry over unchanged.
package config
