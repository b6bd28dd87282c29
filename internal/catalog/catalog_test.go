package catalog

import "testing"

func TestCatalogSizes(t *testing.T) {
	if got := len(Industries()); got != 10 {
		t.Fatalf("expected 10 industries, got %d", got)
	}
	if got := len(Services()); got != 20 {
		t.Fatalf("expected 20 services, got %d", got)
	}
}

func TestMembership(t *testing.T) {
	if !IsIndustry("Healthcare") {
		t.Fatal("Healthcare is a catalog industry")
	}
	if IsIndustry("Space Mining") {
		t.Fatal("unknown industry accepted")
	}
	if !IsService("Cybersecurity Services") {
		t.Fatal("Cybersecurity Services is a catalog service")
	}
	if IsService("Fortune Telling") {
		t.Fatal("unknown service accepted")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	list := Industries()
	list[0] = "mutated"
	if Industries()[0] == "mutated" {
		t.Fatal("accessor must not expose internal slice")
	}
}
