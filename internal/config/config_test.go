package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	if AppConfig == nil {
		t.Fatal("AppConfig not set")
	}
	if AppConfig.DBHost != "localhost" {
		t.Errorf("Expected DBHost to be localhost, got %s", AppConfig.DBHost)
	}
	if AppConfig.DBSSLMode != "disable" {
		t.Errorf("Expected DBSSLMode to be disable, got %s", AppConfig.DBSSLMode)
	}
	if AppConfig.SeedDemoData {
		t.Error("Expected SeedDemoData to default to false")
	}
	if AppConfig.ShipOrigin != "Los Angeles, CA" {
		t.Errorf("Expected ShipOrigin default, got %s", AppConfig.ShipOrigin)
	}
	if AppConfig.ShipCourier != "USPS" {
		t.Errorf("Expected ShipCourier default, got %s", AppConfig.ShipCourier)
	}
}
