package geo

import "github.com/golang/geo/s2"

// AreaCellLevel - уровень ячеек s2 (~1 км²), по которым группируются сокеты и сериализуется приём отчётов
const AreaCellLevel = 13

// CellID возвращает ячейку s2 заданного уровня, содержащую точку
func CellID(c Coordinate, level int) s2.CellID {
	return s2.CellIDFromLatLng(c.LatLng()).Parent(level)
}

// AreaToken - компактное строковое имя ячейки уровня AreaCellLevel, используется как имя канала
func AreaToken(c Coordinate) string {
	return CellID(c, AreaCellLevel).ToToken()
}

// AreaLockKey - ключ для pg_advisory_xact_lock
func AreaLockKey(c Coordinate) int64 {
	return int64(CellID(c, AreaCellLevel))
}
