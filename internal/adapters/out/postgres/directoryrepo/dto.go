// Package directoryrepo reads the driver and warehouse directories. The
// fulfillment core resolves these for display; their lifecycle is owned by
// another system.
package directoryrepo

import (
	"fulfillment/internal/core/domain/model/directory"
	"fulfillment/internal/core/domain/model/kernel"
)

// DriverDTO represents a third-party driver profile.
type DriverDTO struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"size:128"`
	Phone        string `gorm:"size:32"`
	VehiclePlate string `gorm:"size:32"`
	Active       bool
}

// TableName specifies the database table name for drivers.
func (DriverDTO) TableName() string {
	return "drivers"
}

// WarehouseDTO represents a transfer warehouse record.
type WarehouseDTO struct {
	ID            int64  `gorm:"primaryKey"`
	Code          string `gorm:"uniqueIndex;size:32"`
	Name          string `gorm:"size:128"`
	ContactPerson string `gorm:"size:128"`
	ContactPhone  string `gorm:"size:32"`
	Address       string `gorm:"size:512"`
	City          string `gorm:"size:64"`
}

// TableName specifies the database table name for warehouses.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func driverToDomain(dto DriverDTO) (*directory.Driver, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return directory.NewDriver(id, dto.Name, dto.Phone, dto.VehiclePlate, dto.Active)
}

func warehouseToDomain(dto WarehouseDTO) (*directory.Warehouse, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return directory.NewWarehouse(id, dto.Code, dto.Name,
		dto.ContactPerson, dto.ContactPhone, dto.Address, dto.City)
}
