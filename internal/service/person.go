package service

import (
	"fmt"
	"log"

	"github.com/user/cinetheque/internal/model"
	"github.com/user/cinetheque/internal/utils"
	"golang.org/x/sync/singleflight"
)

// personCandidate 归一化后的候选人物记录
type personCandidate struct {
	Identity     string `validate:"required,max=255"`
	BirthDateRaw string `validate:"max=50"`
	BirthPlace   string `validate:"max=255"`
	ProfileURL   string `validate:"max=500"`
}

// PersonReconciler 人物的查找或创建，演员和导演提取器共用。
// 首次在任何源文件中出现时创建；再次导入绝不覆盖已有字段。
type PersonReconciler struct {
	persons  PersonStore
	resolver *Resolver
	sf       singleflight.Group
}

// NewPersonReconciler 创建人物对账器
func NewPersonReconciler(persons PersonStore, resolver *Resolver) *PersonReconciler {
	return &PersonReconciler{persons: persons, resolver: resolver}
}

// FindOrCreate 按自然键查找人物，不存在则创建。
// singleflight 按键收拢并发调用，同一个键不可能被插入两次。
func (p *PersonReconciler) FindOrCreate(cand personCandidate) (*model.Person, error) {
	key := personKey(cand.Identity, cand.BirthDateRaw)

	v, err, _ := p.sf.Do(key, func() (interface{}, error) {
		person, err := p.resolver.ResolvePerson(cand.Identity, cand.BirthDateRaw)
		if err != nil {
			return nil, err
		}
		if person != nil {
			return person, nil
		}

		person = &model.Person{
			Identity:     cand.Identity,
			BirthDateRaw: cand.BirthDateRaw,
			BirthPlace:   cand.BirthPlace,
			ProfileURL:   cand.ProfileURL,
		}
		if cand.BirthDateRaw != "" {
			if t, perr := utils.ParseDate(cand.BirthDateRaw); perr == nil {
				person.BirthDate = &t
			} else {
				// 日期字段可选：解析不了就保留原文，不判行失败
				log.Printf("[导入] %v：%s 的出生日期 %q 保留原文", ErrUnparsableDate, cand.Identity, cand.BirthDateRaw)
			}
		}

		if err := p.persons.Create(person); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		p.resolver.CachePerson(person)
		log.Printf("[导入] 新建人物: %s (出生日期 %q)", person.Identity, person.BirthDateRaw)

		return person, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*model.Person), nil
}
