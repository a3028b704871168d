package pymap3d

import "fmt"

func ExampleEllipsoid_GeodeticToGeocentric() {
	lat, _ := WGS84.GeodeticToGeocentric(45, true)
	fmt.Printf("geocentric: %.4f°", lat)
	// Output:
	// geocentric: 44.8076°
}

func ExampleEllipsoid_GeodeticToConformal() {
	lat, _ := WGS84.GeodeticToConformal(45, true)
	fmt.Printf("conformal: %.4f°", lat)
	// Output:
	// conformal: 44.8077°
}
