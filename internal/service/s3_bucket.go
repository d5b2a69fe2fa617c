package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Service struct {
	BucketName string
	Client     *s3.Client
}

// NewS3Service inicializa el servicio de S3 para las fotos de habitaciones
func NewS3Service(bucketName, region string) (*S3Service, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("el nombre del bucket no está configurado")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("error al cargar la configuración de AWS: %w", err)
	}

	return &S3Service{
		BucketName: bucketName,
		Client:     s3.NewFromConfig(cfg),
	}, nil
}

// UploadFile sube un archivo al bucket y devuelve su URL pública
func UploadFile(s *S3Service, file multipart.File, fileHeader *multipart.FileHeader, downloadable bool) (string, error) {
	defer file.Close()

	buffer := bytes.NewBuffer(nil)
	if _, err := buffer.ReadFrom(file); err != nil {
		return "", fmt.Errorf("error al leer el archivo: %w", err)
	}

	// nombre único por timestamp para no pisar subidas con el mismo nombre
	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), fileHeader.Filename)

	putObjectInput := &s3.PutObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(filename),
		Body:   bytes.NewReader(buffer.Bytes()),
	}

	if !downloadable {
		putObjectInput.ContentType = aws.String(fileHeader.Header.Get("Content-Type"))
	}

	if _, err := s.Client.PutObject(context.TODO(), putObjectInput); err != nil {
		return "", fmt.Errorf("error al subir el archivo a S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.BucketName, filename)
	return url, nil
}
