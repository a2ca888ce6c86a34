package storage

import (
	"clinic-service/internal/app/config"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinio returns nil when the driver is disabled; callers treat a
// nil client as "image hosting unconfigured".
func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	if !driverConfig.Minio.Enabled {
		log.Println("Minio driver disabled, image hosting unconfigured")
		return nil
	}

	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	log.Println("Successfully connected to minio")
	return minioClient
}
