package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是宿主实体的唯一标识符
// 0 保留为无效ID
type EntityID uint64

// EntityManager 是宿主世界：管理实体及其挂载的组件
//
// 架构说明：
//   - 不是全局单例，由调用方显式创建并传入各个系统
//   - 不做内部同步，同一实例只能由一个 goroutine 修改
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的宿主世界
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1,
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// EntityExists 检查实体是否存在（标记删除但尚未清理的实体仍视为存在）
func (em *EntityManager) EntityExists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// EntityCount 返回当前存活的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// DestroyEntity 标记实体待删除，在 RemoveMarkedEntities 时才真正移除
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体及其组件
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// RemoveEntity 立即移除单个实体及其组件
//
// 只影响指定实体，其他已标记删除的实体仍等待 RemoveMarkedEntities。
func (em *EntityManager) RemoveEntity(id EntityID) {
	delete(em.components, id)
	pending := em.entitiesToDestroy[:0]
	for _, marked := range em.entitiesToDestroy {
		if marked != id {
			pending = append(pending, marked)
		}
	}
	em.entitiesToDestroy = pending
}

// AddComponent 为实体挂载组件，同类型组件会被覆盖
// 返回 false 表示实体不存在
func (em *EntityManager) AddComponent(id EntityID, component interface{}) bool {
	compMap, exists := em.components[id]
	if !exists || component == nil {
		return false
	}
	compMap[reflect.TypeOf(component)] = component
	return true
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// GetEntitiesWith 查询拥有全部指定组件类型的实体
//
// 返回的ID按升序排列，保证渲染和遍历顺序稳定（与创建顺序一致）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
